package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-diet-tracker/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var assertErr = errors.New("storage failure")

func float(v float64) *float64 { return &v }

func fridgeProduct(barcode int64, quantity float64, calories *float64) models.FridgeProduct {
	return models.FridgeProduct{
		Product:  models.Product{Barcode: barcode, Name: "p", PortionAmount: 100, PortionUnit: "g", Calories: calories},
		Quantity: quantity,
	}
}

func TestFridgeService_AddToFridge(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockFridgeReader(ctrl)
	writer := NewMockFridgeWriter(ctrl)
	products := NewMockFridgeProductReader(ctrl)
	kafkaWriter := NewMockKafkaWriter(ctrl)

	svc := NewFridgeService(reader, writer, products, kafkaWriter)

	products.EXPECT().GetByBarcode(ctx, int64(100)).Return(&models.Product{Barcode: 100}, nil)
	reader.EXPECT().GetFridgeID(ctx, int64(1)).Return(int64(10), nil)
	writer.EXPECT().AddItem(ctx, int64(10), int64(100), 1.0).Return(2.0, nil)
	kafkaWriter.EXPECT().WriteMessages(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
		require.Len(t, msgs, 1)
		assert.Equal(t, "1", string(msgs[0].Key))

		var event models.FridgeEvent
		require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
		assert.NotEmpty(t, event.EventID)
		assert.Equal(t, int64(1), event.UserID)
		assert.Equal(t, int64(100), event.Barcode)
		assert.Equal(t, 2.0, event.Quantity)
		assert.Equal(t, models.FridgeOperationAdd, event.Operation)
		return nil
	})

	total, err := svc.AddToFridge(ctx, 1, 100, 1)
	assert.NoError(t, err)
	assert.Equal(t, 2.0, total)
}

func TestFridgeService_AddToFridge_Errors(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockFridgeReader(ctrl)
	writer := NewMockFridgeWriter(ctrl)
	products := NewMockFridgeProductReader(ctrl)

	// no Kafka configured: publishing is skipped
	svc := NewFridgeService(reader, writer, products, nil)

	// 1. Invalid quantity
	_, err := svc.AddToFridge(ctx, 1, 100, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	_, err = svc.AddToFridge(ctx, 1, 100, -2)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	// 2. Unknown product
	products.EXPECT().GetByBarcode(ctx, int64(100)).Return(nil, nil)
	_, err = svc.AddToFridge(ctx, 1, 100, 1)
	assert.ErrorIs(t, err, ErrProductNotFound)

	// 3. Missing fridge
	products.EXPECT().GetByBarcode(ctx, int64(100)).Return(&models.Product{Barcode: 100}, nil)
	reader.EXPECT().GetFridgeID(ctx, int64(1)).Return(int64(0), sql.ErrNoRows)
	_, err = svc.AddToFridge(ctx, 1, 100, 1)
	assert.ErrorIs(t, err, ErrFridgeNotFound)

	// 4. Storage failure
	products.EXPECT().GetByBarcode(ctx, int64(100)).Return(&models.Product{Barcode: 100}, nil)
	reader.EXPECT().GetFridgeID(ctx, int64(1)).Return(int64(10), nil)
	writer.EXPECT().AddItem(ctx, int64(10), int64(100), 1.0).Return(0.0, assertErr)
	_, err = svc.AddToFridge(ctx, 1, 100, 1)
	assert.ErrorIs(t, err, assertErr)
}

func TestFridgeService_UpdateFridge(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockFridgeReader(ctrl)
	writer := NewMockFridgeWriter(ctrl)
	kafkaWriter := NewMockKafkaWriter(ctrl)

	svc := NewFridgeService(reader, writer, nil, kafkaWriter)

	reader.EXPECT().GetFridgeID(ctx, int64(1)).Return(int64(10), nil).Times(2)

	writer.EXPECT().SetQuantity(ctx, int64(10), int64(100), 5.0).Return(nil)
	// publish failures are logged, never returned
	kafkaWriter.EXPECT().WriteMessages(ctx, gomock.Any()).Return(errors.New("broker down"))
	assert.NoError(t, svc.UpdateFridge(ctx, 1, 100, 5))

	writer.EXPECT().SetQuantity(ctx, int64(10), int64(200), 5.0).Return(sql.ErrNoRows)
	assert.ErrorIs(t, svc.UpdateFridge(ctx, 1, 200, 5), ErrItemNotInFridge)

	assert.ErrorIs(t, svc.UpdateFridge(ctx, 1, 100, 0), ErrInvalidQuantity)
}

func TestFridgeService_DeleteProduct(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockFridgeReader(ctrl)
	writer := NewMockFridgeWriter(ctrl)
	kafkaWriter := NewMockKafkaWriter(ctrl)

	svc := NewFridgeService(reader, writer, nil, kafkaWriter)

	reader.EXPECT().GetFridgeID(ctx, int64(1)).Return(int64(10), nil).Times(3)

	writer.EXPECT().RemoveItem(ctx, int64(10), int64(100)).Return(nil)
	kafkaWriter.EXPECT().WriteMessages(ctx, gomock.Any()).Return(nil)
	assert.NoError(t, svc.DeleteProduct(ctx, 1, 100))

	writer.EXPECT().RemoveItem(ctx, int64(10), int64(100)).Return(sql.ErrNoRows)
	assert.ErrorIs(t, svc.DeleteProduct(ctx, 1, 100), ErrItemNotInFridge)

	writer.EXPECT().RemoveItem(ctx, int64(10), int64(100)).Return(assertErr)
	assert.ErrorIs(t, svc.DeleteProduct(ctx, 1, 100), assertErr)
}

func TestFridgeService_GetFridge(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockFridgeReader(ctrl)
	svc := NewFridgeService(reader, nil, nil, nil)

	reader.EXPECT().GetFridgeID(ctx, int64(1)).Return(int64(10), nil)
	reader.EXPECT().ListProducts(ctx, int64(10)).Return([]models.FridgeProduct{
		fridgeProduct(300, 1, nil),
		fridgeProduct(200, 2, nil),
		fridgeProduct(100, 2, nil),
		fridgeProduct(400, 5, nil),
	}, nil)

	items, err := svc.GetFridge(ctx, 1)
	require.NoError(t, err)

	var barcodes []int64
	for _, item := range items {
		barcodes = append(barcodes, item.Barcode)
	}
	assert.Equal(t, []int64{400, 100, 200, 300}, barcodes)

	reader.EXPECT().GetFridgeID(ctx, int64(2)).Return(int64(20), nil)
	reader.EXPECT().ListProducts(ctx, int64(20)).Return(nil, nil)

	items, err = svc.GetFridge(ctx, 2)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestFridgeService_GetMealPlan(t *testing.T) {
	ctx := context.Background()

	contents := []models.FridgeProduct{
		fridgeProduct(1, 4, float(100)),
		fridgeProduct(2, 3, float(50)),
		fridgeProduct(3, 2, nil),
		fridgeProduct(4, 1, float(10)),
	}

	tests := []struct {
		name       string
		count      int
		wantItems  int
		wantKcal   float64
		wantErr    error
		skipReader bool
	}{
		{name: "default size", count: 0, wantItems: 3, wantKcal: 150},
		{name: "explicit size", count: 1, wantItems: 1, wantKcal: 100},
		{name: "larger than fridge", count: 10, wantItems: 4, wantKcal: 160},
		{name: "negative count", count: -1, wantErr: ErrInvalidPlanCount, skipReader: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reader := NewMockFridgeReader(ctrl)
			if !tt.skipReader {
				items := append([]models.FridgeProduct(nil), contents...)
				reader.EXPECT().GetFridgeID(ctx, int64(1)).Return(int64(10), nil)
				reader.EXPECT().ListProducts(ctx, int64(10)).Return(items, nil)
			}

			svc := NewFridgeService(reader, nil, nil, nil)
			plan, err := svc.GetMealPlan(ctx, 1, tt.count)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, plan.Items, tt.wantItems)
			assert.Equal(t, tt.wantKcal, plan.Totals.Calories)
			assert.Equal(t, int64(1), plan.Items[0].Barcode)
		})
	}
}
