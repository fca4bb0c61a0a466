// Package sessionrepo provides data transfer objects and repositories for
// the three stage sessions (picking, packing, delivery) and the boxes a
// packing session produces. Each session table carries a unique index on the
// invoice, so a concurrent second start of the same stage is rejected by the
// database.
package sessionrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packing"
	"fulfillment/internal/core/domain/model/session"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OperatorDTO is the operator snapshot embedded in every session row. The
// directory record may change later; the session keeps who did the work.
type OperatorDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;column:operator_id"`
	Name  string    `gorm:"column:operator_name"`
	Email string    `gorm:"column:operator_email"`
}

func operatorFromDomain(op session.Operator) OperatorDTO {
	return OperatorDTO{
		ID:    op.ID().Bytes(),
		Name:  op.Name(),
		Email: op.Email(),
	}
}

func operatorToDomain(dto OperatorDTO) (session.Operator, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return session.Operator{}, err
	}
	return session.NewOperator(id, dto.Name, dto.Email)
}

// PickingSessionDTO represents a picking session row.
type PickingSessionDTO struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey"`
	InvoiceID uuid.UUID   `gorm:"type:uuid;uniqueIndex;not null"`
	Operator  OperatorDTO `gorm:"embedded"`
	SubStatus int
	StartedAt time.Time
	EndedAt   *time.Time
	Notes     string
}

// TableName specifies the database table name for picking sessions.
func (PickingSessionDTO) TableName() string {
	return "picking_sessions"
}

func pickingFromDomain(s *session.PickingSession) PickingSessionDTO {
	return PickingSessionDTO{
		ID:        s.ID().Bytes(),
		InvoiceID: s.InvoiceID().Bytes(),
		Operator:  operatorFromDomain(s.Operator()),
		SubStatus: int(s.SubStatus()),
		StartedAt: s.StartedAt(),
		EndedAt:   s.EndedAt(),
		Notes:     s.Notes(),
	}
}

func pickingToDomain(dto PickingSessionDTO) (*session.PickingSession, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	invoiceID, err := kernel.UUIDFromBytes(dto.InvoiceID[:])
	if err != nil {
		return nil, err
	}
	operator, err := operatorToDomain(dto.Operator)
	if err != nil {
		return nil, err
	}

	return session.RestorePickingSession(
		id,
		invoiceID,
		operator,
		session.SubStatus(dto.SubStatus),
		dto.StartedAt,
		dto.EndedAt,
		dto.Notes,
	)
}

// PackingSessionDTO represents a packing session row.
type PackingSessionDTO struct {
	ID                    uuid.UUID   `gorm:"type:uuid;primaryKey"`
	InvoiceID             uuid.UUID   `gorm:"type:uuid;uniqueIndex;not null"`
	Operator              OperatorDTO `gorm:"embedded"`
	SubStatus             int
	StartedAt             time.Time
	EndedAt               *time.Time
	Notes                 string
	HoldForConsolidation  bool
	ConsolidationCustomer string
	HeldBy                string
}

// TableName specifies the database table name for packing sessions.
func (PackingSessionDTO) TableName() string {
	return "packing_sessions"
}

func packingFromDomain(s *session.PackingSession) PackingSessionDTO {
	return PackingSessionDTO{
		ID:                    s.ID().Bytes(),
		InvoiceID:             s.InvoiceID().Bytes(),
		Operator:              operatorFromDomain(s.Operator()),
		SubStatus:             int(s.SubStatus()),
		StartedAt:             s.StartedAt(),
		EndedAt:               s.EndedAt(),
		Notes:                 s.Notes(),
		HoldForConsolidation:  s.HoldForConsolidation(),
		ConsolidationCustomer: s.ConsolidationCustomer(),
		HeldBy:                s.HeldBy(),
	}
}

func packingToDomain(dto PackingSessionDTO) (*session.PackingSession, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	invoiceID, err := kernel.UUIDFromBytes(dto.InvoiceID[:])
	if err != nil {
		return nil, err
	}
	operator, err := operatorToDomain(dto.Operator)
	if err != nil {
		return nil, err
	}

	return session.RestorePackingSession(
		id,
		invoiceID,
		operator,
		session.SubStatus(dto.SubStatus),
		dto.StartedAt,
		dto.EndedAt,
		dto.Notes,
		dto.HoldForConsolidation,
		dto.ConsolidationCustomer,
		dto.HeldBy,
	)
}

// DeliverySessionDTO represents a delivery session row.
type DeliverySessionDTO struct {
	ID            uuid.UUID   `gorm:"type:uuid;primaryKey"`
	InvoiceID     uuid.UUID   `gorm:"type:uuid;uniqueIndex;not null"`
	Operator      OperatorDTO `gorm:"embedded"`
	SubStatus     int
	StartedAt     time.Time
	EndedAt       *time.Time
	Notes         string
	DeliveryType  int
	CourierName   string
	TrackingNo    string
	CounterPickup bool
	PickupPerson  string
	PickupCompany string
	DeliveredBy   string
	GeoLat        *float64
	GeoLon        *float64
}

// TableName specifies the database table name for delivery sessions.
func (DeliverySessionDTO) TableName() string {
	return "delivery_sessions"
}

func deliveryFromDomain(s *session.DeliverySession) DeliverySessionDTO {
	var geoLat, geoLon *float64
	if geo := s.Geo(); geo != nil {
		lat, lon := geo.Lat(), geo.Lon()
		geoLat, geoLon = &lat, &lon
	}

	return DeliverySessionDTO{
		ID:            s.ID().Bytes(),
		InvoiceID:     s.InvoiceID().Bytes(),
		Operator:      operatorFromDomain(s.Operator()),
		SubStatus:     int(s.SubStatus()),
		StartedAt:     s.StartedAt(),
		EndedAt:       s.EndedAt(),
		Notes:         s.Notes(),
		DeliveryType:  int(s.DeliveryType()),
		CourierName:   s.CourierName(),
		TrackingNo:    s.TrackingNo(),
		CounterPickup: s.CounterPickup(),
		PickupPerson:  s.PickupPerson(),
		PickupCompany: s.PickupCompany(),
		DeliveredBy:   s.DeliveredBy(),
		GeoLat:        geoLat,
		GeoLon:        geoLon,
	}
}

func deliveryToDomain(dto DeliverySessionDTO) (*session.DeliverySession, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	invoiceID, err := kernel.UUIDFromBytes(dto.InvoiceID[:])
	if err != nil {
		return nil, err
	}
	operator, err := operatorToDomain(dto.Operator)
	if err != nil {
		return nil, err
	}

	var geo *session.GeoPoint
	if dto.GeoLat != nil && dto.GeoLon != nil {
		point, geoErr := session.NewGeoPoint(*dto.GeoLat, *dto.GeoLon)
		if geoErr != nil {
			return nil, geoErr
		}
		geo = &point
	}

	return session.RestoreDeliverySession(
		id,
		invoiceID,
		operator,
		session.SubStatus(dto.SubStatus),
		dto.StartedAt,
		dto.EndedAt,
		dto.Notes,
		session.DeliveryType(dto.DeliveryType),
		dto.CourierName,
		dto.TrackingNo,
		dto.CounterPickup,
		dto.PickupPerson,
		dto.PickupCompany,
		dto.DeliveredBy,
		geo,
	)
}

// BoxDTO represents a packed box row.
type BoxDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	PackingSessionID uuid.UUID `gorm:"type:uuid;index;not null"`
	InvoiceID        uuid.UUID `gorm:"type:uuid;index;not null"`
	Number           int
	Sealed           bool
	SealedAt         *time.Time

	Items []BoxItemDTO `gorm:"foreignKey:BoxID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for boxes.
func (BoxDTO) TableName() string {
	return "boxes"
}

// BoxItemDTO represents one line assignment inside a box.
type BoxItemDTO struct {
	BoxID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	InvoiceItemID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Quantity      decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for box lines.
func (BoxItemDTO) TableName() string {
	return "box_items"
}

func boxFromDomain(box *packing.Box) BoxDTO {
	items := make([]BoxItemDTO, 0, len(box.Items()))
	for _, item := range box.Items() {
		items = append(items, BoxItemDTO{
			BoxID:         box.ID().Bytes(),
			InvoiceItemID: item.InvoiceItemID().Bytes(),
			Quantity:      item.Quantity(),
		})
	}

	return BoxDTO{
		ID:               box.ID().Bytes(),
		PackingSessionID: box.PackingSessionID().Bytes(),
		InvoiceID:        box.InvoiceID().Bytes(),
		Number:           box.Number(),
		Sealed:           box.Sealed(),
		SealedAt:         box.SealedAt(),
		Items:            items,
	}
}

func boxToDomain(dto BoxDTO) (*packing.Box, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	sessionID, err := kernel.UUIDFromBytes(dto.PackingSessionID[:])
	if err != nil {
		return nil, err
	}
	invoiceID, err := kernel.UUIDFromBytes(dto.InvoiceID[:])
	if err != nil {
		return nil, err
	}

	items := make([]packing.BoxItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.InvoiceItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		item, itemErr := packing.NewBoxItem(itemID, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return packing.RestoreBox(id, sessionID, invoiceID, dto.Number, dto.Sealed, dto.SealedAt, items)
}
