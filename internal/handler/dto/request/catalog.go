package request

type CreateArtistRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type UpdateArtistRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateServiceRequest struct {
	Name       string `json:"name" binding:"required"`
	Duration   string `json:"duration" binding:"required"`
	PriceCents int64  `json:"priceCents" binding:"required,min=0"`
}

type UpdateServiceRequest struct {
	Name       string `json:"name" binding:"required"`
	Duration   string `json:"duration" binding:"required"`
	PriceCents int64  `json:"priceCents" binding:"required,min=0"`
}
