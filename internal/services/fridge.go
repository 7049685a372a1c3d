package services

//go:generate mockgen -source=fridge.go -destination=fridge_mock.go -package=services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-diet-tracker/internal/logger"
	"github.com/sbilibin2017/gw-diet-tracker/internal/models"
	"github.com/segmentio/kafka-go"
)

// DefaultMealPlanSize is the number of items picked when no count is given.
const DefaultMealPlanSize = 3

var (
	ErrFridgeNotFound   = errors.New("fridge not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrItemNotInFridge  = errors.New("product is not in the fridge")
	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrInvalidPlanCount = errors.New("meal plan count must not be negative")
)

// FridgeReader reads fridge contents.
type FridgeReader interface {
	GetFridgeID(ctx context.Context, userID int64) (int64, error)
	ListProducts(ctx context.Context, fridgeID int64) ([]models.FridgeProduct, error)
}

// FridgeWriter changes fridge contents.
type FridgeWriter interface {
	AddItem(ctx context.Context, fridgeID int64, barcode int64, quantity float64) (float64, error)
	SetQuantity(ctx context.Context, fridgeID int64, barcode int64, quantity float64) error
	RemoveItem(ctx context.Context, fridgeID int64, barcode int64) error
}

// FridgeProductReader checks that a product is known locally.
type FridgeProductReader interface {
	GetByBarcode(ctx context.Context, barcode int64) (*models.Product, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// FridgeService handles fridge operations and Kafka publishing.
type FridgeService struct {
	reader      FridgeReader
	writer      FridgeWriter
	products    FridgeProductReader
	kafkaWriter KafkaWriter
}

// NewFridgeService creates a new FridgeService. kafkaWriter may be nil.
func NewFridgeService(
	reader FridgeReader,
	writer FridgeWriter,
	products FridgeProductReader,
	kafkaWriter KafkaWriter,
) *FridgeService {
	return &FridgeService{
		reader:      reader,
		writer:      writer,
		products:    products,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a fridge event to Kafka.
func (s *FridgeService) publishEvent(ctx context.Context, userID, barcode int64, quantity float64, operation string) {
	log := logger.FromContext(ctx)

	event := models.FridgeEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    userID,
		Barcode:   barcode,
		Quantity:  quantity,
		Operation: operation,
	}

	if s.kafkaWriter == nil {
		log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Errorw("Failed to marshal fridge event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(userID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		log.Errorw("Failed to publish fridge event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		log.Infow("Fridge event published to Kafka", "event_id", event.EventID, "operation", operation)
	}
}

func (s *FridgeService) fridgeID(ctx context.Context, userID int64) (int64, error) {
	fridgeID, err := s.reader.GetFridgeID(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrFridgeNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get fridge", "user_id", userID, "error", err)
		return 0, err
	}
	return fridgeID, nil
}

// AddToFridge adds quantity of a stored product to the user's fridge and
// returns the new quantity.
func (s *FridgeService) AddToFridge(ctx context.Context, userID, barcode int64, quantity float64) (float64, error) {
	if quantity <= 0 {
		return 0, ErrInvalidQuantity
	}

	product, err := s.products.GetByBarcode(ctx, barcode)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to read product", "barcode", barcode, "error", err)
		return 0, err
	}
	if product == nil {
		return 0, ErrProductNotFound
	}

	fridgeID, err := s.fridgeID(ctx, userID)
	if err != nil {
		return 0, err
	}

	total, err := s.writer.AddItem(ctx, fridgeID, barcode, quantity)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to add item", "fridge_id", fridgeID, "barcode", barcode, "error", err)
		return 0, err
	}

	s.publishEvent(ctx, userID, barcode, total, models.FridgeOperationAdd)

	return total, nil
}

// UpdateFridge overwrites the quantity of a product already in the fridge.
func (s *FridgeService) UpdateFridge(ctx context.Context, userID, barcode int64, quantity float64) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	fridgeID, err := s.fridgeID(ctx, userID)
	if err != nil {
		return err
	}

	err = s.writer.SetQuantity(ctx, fridgeID, barcode, quantity)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrItemNotInFridge
	}
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to update item", "fridge_id", fridgeID, "barcode", barcode, "error", err)
		return err
	}

	s.publishEvent(ctx, userID, barcode, quantity, models.FridgeOperationUpdate)

	return nil
}

// DeleteProduct removes a product from the user's fridge. The product itself
// stays in the shared store.
func (s *FridgeService) DeleteProduct(ctx context.Context, userID, barcode int64) error {
	fridgeID, err := s.fridgeID(ctx, userID)
	if err != nil {
		return err
	}

	err = s.writer.RemoveItem(ctx, fridgeID, barcode)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrItemNotInFridge
	}
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to remove item", "fridge_id", fridgeID, "barcode", barcode, "error", err)
		return err
	}

	s.publishEvent(ctx, userID, barcode, 0, models.FridgeOperationDelete)

	return nil
}

// GetFridge returns the fridge contents ordered by quantity descending,
// ties broken by barcode ascending.
func (s *FridgeService) GetFridge(ctx context.Context, userID int64) ([]models.FridgeProduct, error) {
	fridgeID, err := s.fridgeID(ctx, userID)
	if err != nil {
		return nil, err
	}

	items, err := s.reader.ListProducts(ctx, fridgeID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list fridge", "fridge_id", fridgeID, "error", err)
		return nil, err
	}
	if items == nil {
		items = []models.FridgeProduct{}
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Quantity != items[j].Quantity {
			return items[i].Quantity > items[j].Quantity
		}
		return items[i].Barcode < items[j].Barcode
	})

	return items, nil
}

// GetMealPlan picks the first count items of the sorted fridge and sums their
// nutrients. A zero count selects DefaultMealPlanSize items.
func (s *FridgeService) GetMealPlan(ctx context.Context, userID int64, count int) (*models.MealPlan, error) {
	if count < 0 {
		return nil, ErrInvalidPlanCount
	}
	if count == 0 {
		count = DefaultMealPlanSize
	}

	items, err := s.GetFridge(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(items) > count {
		items = items[:count]
	}

	plan := &models.MealPlan{Items: items}
	for i := range items {
		plan.Totals.Add(&items[i].Product)
	}

	return plan, nil
}
