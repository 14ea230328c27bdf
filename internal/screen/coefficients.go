package screen

import (
	"context"
	"log/slog"

	"workforce-admin/internal/storage"
)

type CoefficientStore interface {
	List(ctx context.Context) ([]storage.CoefficientSetting, error)
	Create(ctx context.Context, in storage.CoefficientInput) (storage.CoefficientSetting, error)
	Update(ctx context.Context, id int64, s storage.CoefficientSetting) (storage.CoefficientSetting, error)
	Delete(ctx context.Context, id int64) error
}

// Coefficients edits settings inline. Only one row is in edit mode at a time:
// starting an edit on another row drops the unsaved draft of the previous one.
type Coefficients struct {
	state
	store CoefficientStore

	Rows          []storage.CoefficientSetting `json:"rows"`
	Editing       *storage.CoefficientSetting  `json:"editing,omitempty"`
	Form          storage.CoefficientInput     `json:"form"`
	PendingDelete *storage.CoefficientSetting  `json:"pendingDelete,omitempty"`
}

func NewCoefficients(log *slog.Logger, store CoefficientStore) *Coefficients {
	return &Coefficients{
		state: state{log: log},
		store: store,
		Rows:  []storage.CoefficientSetting{},
		Form:  storage.CoefficientInput{CoefficientType: storage.CoefficientPositive},
	}
}

func (c *Coefficients) Load(ctx context.Context) {
	const op = "screen.Coefficients.Load"

	if err := fetchInto(ctx, c.store.List, &c.Rows); err != nil {
		c.fail(op, "Ошибка загрузки коэффициентов", err)
	}
}

func coefficientID(s storage.CoefficientSetting) int64 { return s.ID }

// StartEdit puts the row into edit mode with a draft copy of its values.
func (c *Coefficients) StartEdit(id int64) bool {
	row, ok := findByID(c.Rows, id, coefficientID)
	if !ok {
		return false
	}
	c.Editing = &row
	return true
}

// ChangeDraft replaces the draft values. The id of the edited row is kept.
func (c *Coefficients) ChangeDraft(draft storage.CoefficientSetting) {
	if c.Editing == nil {
		return
	}
	draft.ID = c.Editing.ID
	c.Editing = &draft
}

// CancelEdit drops the draft without touching the backend.
func (c *Coefficients) CancelEdit() {
	c.Editing = nil
}

// IsEditing reports whether id is the row in edit mode.
func (c *Coefficients) IsEditing(id int64) bool {
	return c.Editing != nil && c.Editing.ID == id
}

// Displayed is what the table shows for a row: the draft while editing.
func (c *Coefficients) Displayed(row storage.CoefficientSetting) storage.CoefficientSetting {
	if c.IsEditing(row.ID) {
		return *c.Editing
	}
	return row
}

// Save sends the draft as a full replacement. On failure the row stays in edit mode.
func (c *Coefficients) Save(ctx context.Context) bool {
	const op = "screen.Coefficients.Save"

	if c.Editing == nil || !c.begin() {
		return false
	}
	defer c.end()

	draft := *c.Editing
	if _, err := c.store.Update(ctx, draft.ID, draft); err != nil {
		c.fail(op, mutationMessage(err, "Ошибка обновления коэффициента"), err)
		return false
	}

	c.Editing = nil
	c.succeed("Коэффициент успешно обновлен")
	c.Load(ctx)

	return true
}

func (c *Coefficients) Create(ctx context.Context, in storage.CoefficientInput) bool {
	const op = "screen.Coefficients.Create"

	c.Form = in
	if in.ParameterName == "" {
		c.Error = "Укажите название параметра"
		return false
	}

	if !c.begin() {
		return false
	}
	defer c.end()

	if _, err := c.store.Create(ctx, in); err != nil {
		c.fail(op, mutationMessage(err, "Ошибка добавления коэффициента"), err)
		return false
	}

	c.Form = storage.CoefficientInput{CoefficientType: storage.CoefficientPositive}
	c.succeed("Коэффициент добавлен")
	c.Load(ctx)

	return true
}

func (c *Coefficients) RequestDelete(id int64) {
	if row, ok := findByID(c.Rows, id, coefficientID); ok {
		c.PendingDelete = &row
		return
	}
	c.PendingDelete = &storage.CoefficientSetting{ID: id}
}

func (c *Coefficients) CancelDelete() {
	c.PendingDelete = nil
}

func (c *Coefficients) ConfirmDelete(ctx context.Context) bool {
	const op = "screen.Coefficients.ConfirmDelete"

	if c.PendingDelete == nil || !c.begin() {
		return false
	}
	defer c.end()

	if err := c.store.Delete(ctx, c.PendingDelete.ID); err != nil {
		c.fail(op, mutationMessage(err, "Ошибка удаления коэффициента"), err)
		return false
	}

	if c.IsEditing(c.PendingDelete.ID) {
		c.Editing = nil
	}
	c.PendingDelete = nil
	c.succeed("Коэффициент успешно удален")
	c.Load(ctx)

	return true
}
