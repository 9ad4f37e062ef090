package product

// Response is the wire shape of a product.
type Response struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Description *string  `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Images      []string `json:"images"`
	InStock     bool     `json:"in_stock"`
	Featured    bool     `json:"featured"`
}

// Presenter shapes catalog products for responses.
type Presenter struct{}

func NewPresenter() *Presenter {
	return &Presenter{}
}

func (p *Presenter) ToResponse(prod Product) Response {
	images := prod.Images
	if images == nil {
		images = []string{}
	}
	return Response{
		ID:          prod.ID,
		Title:       prod.Title,
		Description: prod.Description,
		Price:       prod.Price,
		Category:    prod.Category,
		Images:      images,
		InStock:     prod.InStock,
		Featured:    prod.Featured,
	}
}

func (p *Presenter) ToList(products []Product) []Response {
	result := make([]Response, 0, len(products))
	for _, prod := range products {
		result = append(result, p.ToResponse(prod))
	}
	return result
}
