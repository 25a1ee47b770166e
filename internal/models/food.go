package models

// FoodType is a menu section owned by a restaurant.
type FoodType struct {
	ID    int64  `json:"type_id" db:"type_id"`
	ResID int64  `json:"res_id" db:"res_id"`
	Name  string `json:"type_name" db:"type_name"`
}

// Food prices are stored in minor currency units.
type Food struct {
	ID     int64   `json:"food_id" db:"food_id"`
	TypeID *int64  `json:"type_id" db:"type_id"`
	Name   string  `json:"name" db:"name"`
	Image  *string `json:"image" db:"image"`
	Price  int64   `json:"price" db:"price"`
}

// FoodSummary is the slice of food fields reported back on order lines.
type FoodSummary struct {
	ID    int64   `json:"food_id" db:"food_id"`
	Name  string  `json:"name" db:"name"`
	Image *string `json:"image" db:"image"`
	Price int64   `json:"price" db:"price"`
}

type SubFood struct {
	ID     int64  `json:"sub_id" db:"sub_id"`
	FoodID int64  `json:"food_id" db:"food_id"`
	Name   string `json:"sub_name" db:"sub_name"`
}

type SubPrice struct {
	ID    int64 `json:"sub_price_id" db:"sub_price_id"`
	SubID int64 `json:"sub_id" db:"sub_id"`
	Price int64 `json:"price" db:"price"`
}

// MenuSubFood is a sub-food variant with its price resolved, if one is set.
type MenuSubFood struct {
	ID    int64  `json:"sub_id"`
	Name  string `json:"sub_name"`
	Price *int64 `json:"price"`
}

type MenuFood struct {
	Food
	SubFoods []MenuSubFood `json:"sub_foods"`
}

// MenuSection is one food type with all foods listed under it.
type MenuSection struct {
	FoodType
	Foods []MenuFood `json:"foods"`
}
