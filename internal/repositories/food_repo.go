package repositories

import (
	"context"
	"errors"

	"foodcourt/internal/models"

	"github.com/jackc/pgx/v5"
)

type FoodRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Food, error)
	SetImage(ctx context.Context, id int64, object string) error
	MenuByRestaurant(ctx context.Context, resID int64) ([]*models.MenuSection, error)
}

type foodRepo struct {
	db Database
}

func NewFoodRepo(db Database) FoodRepository {
	return &foodRepo{db: db}
}

func (r *foodRepo) GetByID(ctx context.Context, id int64) (*models.Food, error) {
	food := &models.Food{}
	query := `
		SELECT food_id, type_id, name, image, price
		FROM foods
		WHERE food_id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&food.ID, &food.TypeID, &food.Name, &food.Image, &food.Price)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return food, nil
}

func (r *foodRepo) SetImage(ctx context.Context, id int64, object string) error {
	tag, err := r.db.Exec(ctx, `UPDATE foods SET image = $1 WHERE food_id = $2`, object, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// MenuByRestaurant loads the restaurant's menu sections, foods and sub-food
// variants in two queries and assembles them in memory.
func (r *foodRepo) MenuByRestaurant(ctx context.Context, resID int64) ([]*models.MenuSection, error) {
	query := `
		SELECT ft.type_id, ft.res_id, ft.type_name, f.food_id, f.type_id, f.name, f.image, f.price
		FROM food_types ft
		LEFT JOIN foods f ON f.type_id = ft.type_id
		WHERE ft.res_id = $1
		ORDER BY ft.type_id, f.food_id
	`
	rows, err := r.db.Query(ctx, query, resID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []*models.MenuSection
	byType := map[int64]*models.MenuSection{}
	for rows.Next() {
		var (
			ft        models.FoodType
			foodID    *int64
			foodType  *int64
			foodName  *string
			foodImage *string
			foodPrice *int64
		)
		if err := rows.Scan(&ft.ID, &ft.ResID, &ft.Name, &foodID, &foodType, &foodName, &foodImage, &foodPrice); err != nil {
			return nil, err
		}
		section, ok := byType[ft.ID]
		if !ok {
			section = &models.MenuSection{FoodType: ft, Foods: []models.MenuFood{}}
			byType[ft.ID] = section
			sections = append(sections, section)
		}
		if foodID == nil {
			continue
		}
		section.Foods = append(section.Foods, models.MenuFood{
			Food: models.Food{
				ID:     *foodID,
				TypeID: foodType,
				Name:   deref(foodName),
				Image:  foodImage,
				Price:  derefInt(foodPrice),
			},
			SubFoods: []models.MenuSubFood{},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Index foods only once the slices stop growing; appending above would
	// invalidate pointers taken mid-loop.
	foodIndex := map[int64]*models.MenuFood{}
	for _, section := range sections {
		for i := range section.Foods {
			foodIndex[section.Foods[i].ID] = &section.Foods[i]
		}
	}

	subQuery := `
		SELECT sf.sub_id, sf.food_id, sf.sub_name, sp.price
		FROM sub_foods sf
		LEFT JOIN sub_prices sp ON sp.sub_id = sf.sub_id
		JOIN foods f ON f.food_id = sf.food_id
		JOIN food_types ft ON ft.type_id = f.type_id
		WHERE ft.res_id = $1
		ORDER BY sf.sub_id
	`
	subRows, err := r.db.Query(ctx, subQuery, resID)
	if err != nil {
		return nil, err
	}
	defer subRows.Close()

	for subRows.Next() {
		var (
			sub    models.MenuSubFood
			foodID int64
		)
		if err := subRows.Scan(&sub.ID, &foodID, &sub.Name, &sub.Price); err != nil {
			return nil, err
		}
		if food, ok := foodIndex[foodID]; ok {
			food.SubFoods = append(food.SubFoods, sub)
		}
	}
	return sections, subRows.Err()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(i *int64) int64 {
	if i == nil {
		return 0
	}
	return *i
}
