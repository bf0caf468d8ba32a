package pdf

import (
	"bytes"
	"context"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

type PDFProvider struct{}

func New() Provider {
	return &PDFProvider{}
}

func (p *PDFProvider) GeneratePurchaseList(ctx context.Context, data PurchaseListData) (io.Reader, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(12, "Purchase List", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	m.AddRow(20,
		col.New(6).Add(
			text.New("Reference: "+data.Reference, props.Text{Top: 0}),
			text.New("Status: "+data.Status, props.Text{Top: 4}),
			text.New("Generated: "+data.GenerationDate, props.Text{Top: 8}),
			text.New("Event: "+data.EventLabel, props.Text{Top: 12}),
		),
		col.New(6),
	)

	// Table Header
	m.AddRow(10,
		text.NewCol(4, "Ingredient", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Quantity", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Unit", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Batch size", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Batches", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, item := range data.Items {
		m.AddRow(10,
			text.NewCol(4, item.IngredientName, props.Text{Size: 9}),
			text.NewCol(2, item.Quantity, props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, item.Unit, props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, item.BatchSize, props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, item.TotalBatches, props.Text{Size: 9, Align: align.Right}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(doc.GetBytes()), nil
}
