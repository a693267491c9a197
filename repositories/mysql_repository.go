package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/brianmaleek/alx-listing-app-deployed/models"
)

type propertyRow struct {
	ID          string         `gorm:"primaryKey;size:64"`
	Position    int            `gorm:"index"`
	Name        string         `gorm:"size:255"`
	Image       string         `gorm:"type:text"`
	Price       float64        `gorm:"not null"`
	Rating      float64        `gorm:"not null;default:0"`
	Street      string         `gorm:"size:255"`
	City        string         `gorm:"size:128;not null"`
	State       string         `gorm:"size:128"`
	Country     string         `gorm:"size:128;not null"`
	Category    datatypes.JSON `gorm:"column:category"`
	Description string         `gorm:"type:text"`
	Amenities   datatypes.JSON `gorm:"column:amenities"`
	Bedrooms    *int
	Bathrooms   *int
	MaxGuests   *int
	Host        datatypes.JSON `gorm:"column:host"`
}

func (propertyRow) TableName() string { return "properties" }

type reviewRow struct {
	RowID      uint    `gorm:"primaryKey;autoIncrement"`
	PropertyID string  `gorm:"size:64;index;not null"`
	ReviewID   string  `gorm:"size:64;not null"`
	UserName   string  `gorm:"size:255"`
	UserAvatar string  `gorm:"type:text"`
	Rating     float64 `gorm:"not null"`
	Comment    string  `gorm:"type:text"`
	Date       string  `gorm:"size:32"`
}

func (reviewRow) TableName() string { return "reviews" }

// Migrate creates or updates the properties and reviews tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&propertyRow{}, &reviewRow{})
}

// Seed fills empty tables with the given catalogue and review table. Tables that already
// hold rows are left untouched.
func Seed(ctx context.Context, db *gorm.DB, properties []models.Property, reviews map[string][]models.Review) error {
	db = db.WithContext(ctx)

	var count int64
	if err := db.Model(&propertyRow{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count properties: %w", err)
	}
	if count == 0 && len(properties) > 0 {
		rows := make([]propertyRow, 0, len(properties))
		for i, p := range properties {
			row, err := toPropertyRow(p, i)
			if err != nil {
				return err
			}
			rows = append(rows, row)
		}
		if err := db.Create(&rows).Error; err != nil {
			return fmt.Errorf("seed properties: %w", err)
		}
	}

	if err := db.Model(&reviewRow{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count reviews: %w", err)
	}
	if count > 0 {
		return nil
	}
	seeded := seedReviewOrder(properties, reviews)
	rows := make([]reviewRow, 0, len(seeded))
	for _, r := range seeded {
		rows = append(rows, toReviewRow(r.PropertyID, r))
	}
	if len(rows) == 0 {
		return nil
	}
	if err := db.Create(&rows).Error; err != nil {
		return fmt.Errorf("seed reviews: %w", err)
	}
	return nil
}

// MySQLReviewRepository reads reviews through gorm.
type MySQLReviewRepository struct {
	DB *gorm.DB
}

func NewMySQLReviewRepository(db *gorm.DB) *MySQLReviewRepository {
	return &MySQLReviewRepository{DB: db}
}

func (r *MySQLReviewRepository) FindByProperty(ctx context.Context, propertyID string) ([]models.Review, error) {
	var rows []reviewRow
	err := r.DB.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("row_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("MySQLReviewRepository.FindByProperty: %w", err)
	}

	out := make([]models.Review, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.Review{
			ID:         row.ReviewID,
			PropertyID: row.PropertyID,
			UserName:   row.UserName,
			UserAvatar: row.UserAvatar,
			Rating:     row.Rating,
			Comment:    row.Comment,
			Date:       row.Date,
		})
	}
	return out, nil
}

// MySQLPropertyRepository reads the catalogue through gorm.
type MySQLPropertyRepository struct {
	DB *gorm.DB
}

func NewMySQLPropertyRepository(db *gorm.DB) *MySQLPropertyRepository {
	return &MySQLPropertyRepository{DB: db}
}

func (r *MySQLPropertyRepository) List(ctx context.Context) ([]models.Property, error) {
	var rows []propertyRow
	if err := r.DB.WithContext(ctx).Order("position ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("MySQLPropertyRepository.List: %w", err)
	}

	out := make([]models.Property, 0, len(rows))
	for _, row := range rows {
		p, err := row.toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *MySQLPropertyRepository) Get(ctx context.Context, id string) (*models.Property, error) {
	var row propertyRow
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("MySQLPropertyRepository.Get: %w", err)
	}
	p, err := row.toModel()
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func toPropertyRow(p models.Property, position int) (propertyRow, error) {
	row := propertyRow{
		ID:          p.ID,
		Position:    position,
		Name:        p.Name,
		Image:       p.Image,
		Price:       p.Price,
		Rating:      p.Rating,
		Street:      p.Address.Street,
		City:        p.Address.City,
		State:       p.Address.State,
		Country:     p.Address.Country,
		Description: p.Description,
		Bedrooms:    p.Bedrooms,
		Bathrooms:   p.Bathrooms,
		MaxGuests:   p.MaxGuests,
	}

	var err error
	if row.Category, err = jsonColumn(p.Category, len(p.Category) > 0); err != nil {
		return row, fmt.Errorf("encode category of %s: %w", p.ID, err)
	}
	if row.Amenities, err = jsonColumn(p.Amenities, len(p.Amenities) > 0); err != nil {
		return row, fmt.Errorf("encode amenities of %s: %w", p.ID, err)
	}
	if row.Host, err = jsonColumn(p.Host, p.Host != nil); err != nil {
		return row, fmt.Errorf("encode host of %s: %w", p.ID, err)
	}
	return row, nil
}

// jsonColumn stores absent values as JSON null so the column is never SQL NULL.
func jsonColumn(v interface{}, present bool) (datatypes.JSON, error) {
	if !present {
		return datatypes.JSON("null"), nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

func (row propertyRow) toModel() (models.Property, error) {
	p := models.Property{
		ID:     row.ID,
		Name:   row.Name,
		Image:  row.Image,
		Price:  row.Price,
		Rating: row.Rating,
		Address: models.Address{
			Street:  row.Street,
			City:    row.City,
			State:   row.State,
			Country: row.Country,
		},
		Description: row.Description,
		Bedrooms:    row.Bedrooms,
		Bathrooms:   row.Bathrooms,
		MaxGuests:   row.MaxGuests,
	}
	if len(row.Category) > 0 {
		if err := json.Unmarshal(row.Category, &p.Category); err != nil {
			return p, fmt.Errorf("decode category of %s: %w", row.ID, err)
		}
	}
	if len(row.Amenities) > 0 {
		if err := json.Unmarshal(row.Amenities, &p.Amenities); err != nil {
			return p, fmt.Errorf("decode amenities of %s: %w", row.ID, err)
		}
	}
	if len(row.Host) > 0 && string(row.Host) != "null" {
		var h models.Host
		if err := json.Unmarshal(row.Host, &h); err != nil {
			return p, fmt.Errorf("decode host of %s: %w", row.ID, err)
		}
		p.Host = &h
	}
	return p, nil
}

func toReviewRow(propertyID string, r models.Review) reviewRow {
	return reviewRow{
		PropertyID: propertyID,
		ReviewID:   r.ID,
		UserName:   r.UserName,
		UserAvatar: r.UserAvatar,
		Rating:     r.Rating,
		Comment:    r.Comment,
		Date:       r.Date,
	}
}
