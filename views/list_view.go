package views

import (
	"context"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/brianmaleek/alx-listing-app-deployed/models"
)

const (
	MsgLoadingProperties = "Loading properties..."
	MsgNoProperties      = "No properties available."
	MsgPropertiesFailed  = "Failed to load properties."
)

// PropertyLister is the read the list view depends on.
type PropertyLister interface {
	ListProperties(ctx context.Context) ([]models.Property, error)
}

// ListView fetches the whole catalogue and renders one card per property.
type ListView struct {
	lister PropertyLister
	logger log.Logger
	res    resource[models.PropertySummary]
}

func NewListView(lister PropertyLister, logger log.Logger) *ListView {
	return &ListView{lister: lister, logger: logger}
}

// Load issues one list request. Failures are logged and leave the collection empty.
func (v *ListView) Load(ctx context.Context) {
	applied, err := v.res.load(ctx, func(ctx context.Context) ([]models.PropertySummary, error) {
		list, err := v.lister.ListProperties(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]models.PropertySummary, 0, len(list))
		for _, p := range list {
			out = append(out, p.Summary())
		}
		return out, nil
	})
	if err != nil && applied {
		_ = level.Error(v.logger).Log("msg", "error fetching properties", "err", err)
	}
}

// Stop discards any load still in flight.
func (v *ListView) Stop() { v.res.stop() }

// ListViewData is what the list template renders.
type ListViewData struct {
	State   State
	Message string
	Count   int
	Cards   []Card
}

func (d ListViewData) Loading() bool { return d.State == StateLoading }
func (d ListViewData) Failed() bool  { return d.State == StateFailed }
func (d ListViewData) Empty() bool   { return d.State == StateEmpty }

func (v *ListView) Data() ListViewData {
	state, items := v.res.snapshot()
	data := ListViewData{State: state}

	switch state {
	case StateLoading:
		data.Message = MsgLoadingProperties
	case StateFailed:
		data.Message = MsgPropertiesFailed
	case StateEmpty:
		data.Message = MsgNoProperties
	case StateReady:
		data.Count = len(items)
		data.Cards = make([]Card, 0, len(items))
		for _, s := range items {
			data.Cards = append(data.Cards, NewCard(s))
		}
	}
	return data
}
