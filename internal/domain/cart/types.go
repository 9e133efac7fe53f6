package cart

type UpdateType string

const (
	UpdatePlus   UpdateType = "plus"
	UpdateMinus  UpdateType = "minus"
	UpdateDelete UpdateType = "delete"
	UpdateSet    UpdateType = "set"
)

func (u UpdateType) IsValid() bool {
	switch u {
	case UpdatePlus, UpdateMinus, UpdateDelete, UpdateSet:
		return true
	default:
		return false
	}
}

// Action is the vocabulary presentation layers dispatch against the store.
type Action interface {
	isAction()
}

// UpdateItemAction adjusts or removes an existing line. Quantity is only
// read for UpdateSet.
type UpdateItemAction struct {
	MerchandiseID string
	UpdateType    UpdateType
	Quantity      float64
}

func (UpdateItemAction) isAction() {}

// AddItemAction creates a line, or accumulates quantity onto a line that
// already holds the same merchandise.
type AddItemAction struct {
	MerchandiseID string
	Unit          UnitReference
	QuantityDelta float64
}

func (AddItemAction) isAction() {}
