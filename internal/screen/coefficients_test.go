package screen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"workforce-admin/internal/storage"
)

func coefficientRows() []storage.CoefficientSetting {
	return []storage.CoefficientSetting{
		{ID: 1, ParameterName: "Звонки", Norm: 100, Base: 1, Weight: 0.5, CoefficientType: storage.CoefficientPositive},
		{ID: 2, ParameterName: "Опоздания", Norm: 0, Base: 1, Weight: 0.2, CoefficientType: storage.CoefficientNegative},
	}
}

func TestCoefficients_CancelEditRestoresWithoutRequest(t *testing.T) {
	ctx := context.Background()
	store := new(MockCoefficientStore)
	store.On("List", mock.Anything).Return(coefficientRows(), nil)

	c := NewCoefficients(discardLogger(), store)
	c.Load(ctx)

	require.True(t, c.StartEdit(1))
	draft := *c.Editing
	draft.Norm = 150
	c.ChangeDraft(draft)
	assert.Equal(t, 150.0, c.Displayed(c.Rows[0]).Norm)

	c.CancelEdit()

	assert.False(t, c.IsEditing(1))
	assert.Equal(t, 100.0, c.Displayed(c.Rows[0]).Norm)
	store.AssertNumberOfCalls(t, "List", 1)
	store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestCoefficients_SecondEditDropsFirstDraft(t *testing.T) {
	store := new(MockCoefficientStore)
	store.On("List", mock.Anything).Return(coefficientRows(), nil)

	c := NewCoefficients(discardLogger(), store)
	c.Load(context.Background())

	require.True(t, c.StartEdit(1))
	draft := *c.Editing
	draft.Weight = 0.9
	c.ChangeDraft(draft)

	require.True(t, c.StartEdit(2))
	assert.False(t, c.IsEditing(1))
	assert.True(t, c.IsEditing(2))
	assert.Equal(t, 0.5, c.Displayed(c.Rows[0]).Weight)

	assert.False(t, c.StartEdit(42))
	assert.True(t, c.IsEditing(2))
}

func TestCoefficients_ChangeDraftKeepsID(t *testing.T) {
	store := new(MockCoefficientStore)
	store.On("List", mock.Anything).Return(coefficientRows(), nil)

	c := NewCoefficients(discardLogger(), store)
	c.Load(context.Background())

	c.ChangeDraft(storage.CoefficientSetting{ID: 2, Norm: 5})
	assert.Nil(t, c.Editing)

	require.True(t, c.StartEdit(1))
	c.ChangeDraft(storage.CoefficientSetting{ID: 2, Norm: 5})
	assert.Equal(t, int64(1), c.Editing.ID)
}

func TestCoefficients_SaveSendsDraftAndRefetches(t *testing.T) {
	ctx := context.Background()
	store := new(MockCoefficientStore)

	updated := coefficientRows()
	updated[0].Norm = 120

	store.On("List", mock.Anything).Return(coefficientRows(), nil).Once()
	store.On("Update", mock.Anything, int64(1), updated[0]).Return(updated[0], nil).Once()
	store.On("List", mock.Anything).Return(updated, nil).Once()

	c := NewCoefficients(discardLogger(), store)
	c.Load(ctx)

	require.True(t, c.StartEdit(1))
	draft := *c.Editing
	draft.Norm = 120
	c.ChangeDraft(draft)

	require.True(t, c.Save(ctx))
	assert.Nil(t, c.Editing)
	assert.Equal(t, 120.0, c.Rows[0].Norm)
	assert.Equal(t, "Коэффициент успешно обновлен", c.Success)
	store.AssertExpectations(t)
}

func TestCoefficients_SaveFailureStaysInEditMode(t *testing.T) {
	ctx := context.Background()
	store := new(MockCoefficientStore)
	store.On("List", mock.Anything).Return(coefficientRows(), nil).Once()
	store.On("Update", mock.Anything, int64(2), mock.Anything).Return(nil, storage.ErrNetwork)

	c := NewCoefficients(discardLogger(), store)
	c.Load(ctx)

	require.True(t, c.StartEdit(2))
	draft := *c.Editing
	draft.Weight = 0.3
	c.ChangeDraft(draft)

	assert.False(t, c.Save(ctx))
	assert.True(t, c.IsEditing(2))
	assert.Equal(t, 0.3, c.Editing.Weight)
	assert.Equal(t, 0.2, c.Rows[1].Weight)
	assert.Equal(t, "Ошибка обновления коэффициента", c.Error)
	assert.False(t, c.Busy)
	store.AssertNumberOfCalls(t, "List", 1)
}

func TestCoefficients_SaveWithoutEditIsNoop(t *testing.T) {
	store := new(MockCoefficientStore)
	c := NewCoefficients(discardLogger(), store)

	assert.False(t, c.Save(context.Background()))
	store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestCoefficients_CreateRequiresParameter(t *testing.T) {
	store := new(MockCoefficientStore)
	c := NewCoefficients(discardLogger(), store)

	assert.False(t, c.Create(context.Background(), storage.CoefficientInput{Norm: 1}))
	assert.Equal(t, "Укажите название параметра", c.Error)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCoefficients_DeleteEditedRowDropsDraft(t *testing.T) {
	ctx := context.Background()
	store := new(MockCoefficientStore)
	store.On("List", mock.Anything).Return(coefficientRows(), nil).Once()
	store.On("Delete", mock.Anything, int64(1)).Return(nil)
	store.On("List", mock.Anything).Return(coefficientRows()[1:], nil).Once()

	c := NewCoefficients(discardLogger(), store)
	c.Load(ctx)
	require.True(t, c.StartEdit(1))

	c.RequestDelete(1)
	require.True(t, c.ConfirmDelete(ctx))

	assert.Nil(t, c.Editing)
	assert.Len(t, c.Rows, 1)
	assert.Equal(t, "Коэффициент успешно удален", c.Success)
}
