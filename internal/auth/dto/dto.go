package dto

type SignupDTO struct {
	RestaurantName string `json:"restaurant_name" validate:"required"`
	Email          string `json:"email"           validate:"required,email"`
	Password       string `json:"password"        validate:"required,min=8"`
	Address        string `json:"address"         validate:"required"`
	PhoneNumber    string `json:"phone_number"    validate:"required"`
}

type LoginDTO struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
