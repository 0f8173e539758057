// Package postgres keeps the same two document collections in PostgreSQL
// through GORM. Each document is one row; its embedded lists are stored as
// JSON columns so a save still replaces the document as a whole.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/junaidrashid-git/storefront/models"
	"github.com/junaidrashid-git/storefront/repository"
)

type userRow struct {
	ID           string  `gorm:"primaryKey"`
	Username     *string `gorm:"uniqueIndex"`
	PasswordHash string
	GoogleID     *string                  `gorm:"uniqueIndex"`
	FacebookID   *string                  `gorm:"uniqueIndex"`
	Profile      models.Profile           `gorm:"embedded"`
	WishList     []models.ProductSnapshot `gorm:"serializer:json"`
	Cart         []models.ProductSnapshot `gorm:"serializer:json"`
	Orders       []models.OrderRecord     `gorm:"serializer:json"`
	CreatedAt    time.Time
}

func (userRow) TableName() string { return "users" }

type productRow struct {
	ID          string `gorm:"primaryKey"`
	ProductName string `gorm:"not null"`
	Description string
	Price       float64
	Rating      float64
	ImgSrc      string
	Reviews     []models.Review `gorm:"serializer:json"`
	CreatedAt   time.Time
}

func (productRow) TableName() string { return "products" }

type Store struct {
	db *gorm.DB
}

// Open connects with dsn and migrates both tables.
func Open(dsn string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w: %w", repository.ErrStoreUnavailable, err)
	}
	if err := db.AutoMigrate(&userRow{}, &productRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Println("✅ Database connected and migrated")
	return &Store{db: db}, nil
}

func (s *Store) Users() repository.UserRepository       { return &userRepository{db: s.db} }
func (s *Store) Products() repository.ProductRepository { return &productRepository{db: s.db} }

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("ping: %w: %w", repository.ErrStoreUnavailable, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping: %w: %w", repository.ErrStoreUnavailable, err)
	}
	return nil
}

func (s *Store) Close(context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func wrap(op string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", op, repository.ErrDuplicateIdentity)
	default:
		return fmt.Errorf("%s: %w: %w", op, repository.ErrStoreUnavailable, err)
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toUserRow(u *models.User) userRow {
	return userRow{
		ID:           u.ID,
		Username:     nullable(u.Username),
		PasswordHash: u.PasswordHash,
		GoogleID:     nullable(u.GoogleID),
		FacebookID:   nullable(u.FacebookID),
		Profile:      u.Profile,
		WishList:     u.WishList,
		Cart:         u.Cart,
		Orders:       u.Orders,
		CreatedAt:    u.CreatedAt,
	}
}

func (r userRow) toModel() *models.User {
	return &models.User{
		ID:           r.ID,
		Username:     deref(r.Username),
		PasswordHash: r.PasswordHash,
		GoogleID:     deref(r.GoogleID),
		FacebookID:   deref(r.FacebookID),
		Profile:      r.Profile,
		WishList:     r.WishList,
		Cart:         r.Cart,
		Orders:       r.Orders,
		CreatedAt:    r.CreatedAt,
	}
}

type userRepository struct {
	db *gorm.DB
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var row userRow
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, wrap("find user "+id, err)
	}
	return row.toModel(), nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var row userRow
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&row).Error; err != nil {
		return nil, wrap("find username", err)
	}
	return row.toModel(), nil
}

func (r *userRepository) Create(ctx context.Context, u *models.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	row := toUserRow(u)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return wrap("insert user", err)
	}
	return nil
}

// UpsertExternal looks the identity up and inserts it when missing. A
// concurrent insert of the same identity trips the unique index; the loser
// looks again once and returns the winner's row.
func (r *userRepository) UpsertExternal(ctx context.Context, provider models.Provider, externalID, displayName string) (*models.User, error) {
	column := map[models.Provider]string{
		models.ProviderGoogle:   "google_id",
		models.ProviderFacebook: "facebook_id",
	}[provider]
	if column == "" {
		return nil, fmt.Errorf("unknown provider %q", provider)
	}

	find := func() (*models.User, error) {
		var row userRow
		if err := r.db.WithContext(ctx).Where(column+" = ?", externalID).First(&row).Error; err != nil {
			return nil, err
		}
		return row.toModel(), nil
	}

	u, err := find()
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, wrap("find "+string(provider)+" user", err)
	}

	u = &models.User{Profile: models.Profile{Name: displayName}}
	u.SetExternalID(provider, externalID)
	err = r.Create(ctx, u)
	if errors.Is(err, repository.ErrDuplicateIdentity) {
		if u, err = find(); err != nil {
			return nil, wrap("find "+string(provider)+" user", err)
		}
		return u, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) Save(ctx context.Context, u *models.User) error {
	row := toUserRow(u)
	res := r.db.WithContext(ctx).Model(&userRow{ID: u.ID}).Select("*").Omit("id", "created_at").Updates(&row)
	if res.Error != nil {
		return wrap("save user "+u.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("save user %s: %w", u.ID, repository.ErrNotFound)
	}
	return nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]models.User, error) {
	var rows []userRow
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&rows).Error; err != nil {
		return nil, wrap("find users", err)
	}
	users := make([]models.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, *row.toModel())
	}
	return users, nil
}

func toProductRow(p *models.Product) productRow {
	return productRow{
		ID:          p.ID,
		ProductName: p.ProductName,
		Description: p.Description,
		Price:       p.Price,
		Rating:      p.Rating,
		ImgSrc:      p.ImgSrc,
		Reviews:     p.Reviews,
		CreatedAt:   p.CreatedAt,
	}
}

func (r productRow) toModel() models.Product {
	return models.Product{
		ID:          r.ID,
		ProductName: r.ProductName,
		Description: r.Description,
		Price:       r.Price,
		Rating:      r.Rating,
		ImgSrc:      r.ImgSrc,
		Reviews:     r.Reviews,
		CreatedAt:   r.CreatedAt,
	}
}

type productRepository struct {
	db *gorm.DB
}

func (r *productRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	var rows []productRow
	if err := r.db.WithContext(ctx).Order("created_at asc, id asc").Find(&rows).Error; err != nil {
		return nil, wrap("find products", err)
	}
	products := make([]models.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, row.toModel())
	}
	return products, nil
}

func (r *productRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	var row productRow
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, wrap("find product "+id, err)
	}
	p := row.toModel()
	return &p, nil
}

func (r *productRepository) Save(ctx context.Context, p *models.Product) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	row := toProductRow(p)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&productRow{ID: p.ID}).Select("*").Omit("id", "created_at").Updates(&row)
		if res.Error != nil {
			return wrap("save product "+p.ID, res.Error)
		}
		if res.RowsAffected > 0 {
			return nil
		}
		if err := tx.Create(&row).Error; err != nil {
			return wrap("insert product "+p.ID, err)
		}
		return nil
	})
}

func (r *productRepository) Seed(ctx context.Context, products []models.Product) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&productRow{}).Count(&count).Error; err != nil {
		return wrap("count products", err)
	}
	if count > 0 {
		return nil // already seeded
	}

	for i := range products {
		if err := r.Save(ctx, &products[i]); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", products[i].ProductName, err)
		}
	}
	log.Printf("🌱 Seeded %d products", len(products))
	return nil
}
