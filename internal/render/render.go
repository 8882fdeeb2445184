// Package render turns link results into an operations/bills graph.
package render

import (
	"fmt"
	"io"

	"github.com/konnector-tools/billgraph/internal/config"
	"github.com/konnector-tools/billgraph/internal/graph"
	"github.com/konnector-tools/billgraph/internal/linkresult"
	"github.com/konnector-tools/billgraph/internal/model"
)

// Renderer builds graphs using a render style.
type Renderer struct {
	cfg config.Config
}

// New creates a Renderer. A nil cfg uses config.Default().
func New(cfg *config.Config) *Renderer {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Renderer{cfg: *cfg}
}

// Render builds the graph for records, visiting them in bill date order.
// Each bill and operation becomes one node, however many records share it.
func (r *Renderer) Render(records []model.LinkRecord) *graph.Graph {
	g := graph.New(r.cfg.Graph.Name)
	for _, k := range r.cfg.GraphAttrKeys() {
		g.SetAttr(k, r.cfg.Graph.Attributes[k])
	}

	for _, rec := range linkresult.SortByBillDate(records) {
		bill := rec.Bill
		g.AddNode(bill.ID,
			graph.A("label", BillLabel(bill)),
			graph.A("color", r.billColor(bill)),
		)
		if rec.Debit != nil {
			r.addOperation(g, bill.ID, *rec.Debit, r.cfg.Colors.Debit, r.cfg.EdgeLabels.Debit)
		}
		if rec.Credit != nil {
			r.addOperation(g, bill.ID, *rec.Credit, r.cfg.Colors.Credit, r.cfg.EdgeLabels.Credit)
		}
	}
	return g
}

// RenderTo renders records and writes the DOT source to w.
func (r *Renderer) RenderTo(w io.Writer, records []model.LinkRecord) error {
	if _, err := r.Render(records).WriteTo(w); err != nil {
		return fmt.Errorf("writing graph: %w", err)
	}
	return nil
}

func (r *Renderer) addOperation(g *graph.Graph, billID string, op model.Operation, color, edgeLabel string) {
	g.AddNode(op.ID,
		graph.A("label", OperationLabel(op)),
		graph.A("color", color),
		graph.A("shape", r.cfg.OperationShape),
	)
	g.AddEdge(billID, op.ID, graph.A("label", edgeLabel))
}

func (r *Renderer) billColor(b model.Bill) string {
	if b.IsRefund {
		return r.cfg.Colors.Refund
	}
	return r.cfg.Colors.Bill
}

// BillLabel returns the node label of a bill: date, vendor and
// beneficiary, subtype, amount. A missing beneficiary or subtype leaves
// its segment blank.
func BillLabel(b model.Bill) string {
	return fmt.Sprintf("%s\n%s %s\n%s\n%s", b.DisplayDate(), b.Vendor, b.Beneficiary, b.Subtype, b.Amount)
}

// OperationLabel returns the node label of a bank operation: date, label, amount.
func OperationLabel(op model.Operation) string {
	return fmt.Sprintf("%s\n%s\n%s", op.DisplayDate(), op.Label, op.Amount)
}
