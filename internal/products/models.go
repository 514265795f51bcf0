package products

import "go.mongodb.org/mongo-driver/bson/primitive"

// ProductImage is one entry of a product's image gallery.
type ProductImage struct {
	URL string `json:"url" bson:"url" validate:"required,http_url"`
	Alt string `json:"alt,omitempty" bson:"alt,omitempty"`
}

// Product is the stored form of a catalog entry. The native _id renders as a
// 24-hex "id" string in JSON output.
type Product struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64            `json:"price" bson:"price"`
	Category    string             `json:"category" bson:"category"`
	Subcategory string             `json:"subcategory,omitempty" bson:"subcategory,omitempty"`
	Images      []ProductImage     `json:"images" bson:"images"`
	InStock     bool               `json:"in_stock" bson:"in_stock"`
	Featured    bool               `json:"featured" bson:"featured"`
	Tags        []string           `json:"tags" bson:"tags"`
}

// NewProduct is the request payload for create and full-replace update.
// Price is a pointer so that an explicit 0 passes "required".
type NewProduct struct {
	Title       string         `json:"title" validate:"required"`
	Description string         `json:"description"`
	Price       *float64       `json:"price" validate:"required,gte=0"`
	Category    string         `json:"category" validate:"required"`
	Subcategory string         `json:"subcategory"`
	Images      []ProductImage `json:"images" validate:"omitempty,dive"`
	InStock     *bool          `json:"in_stock"`
	Featured    bool           `json:"featured"`
	Tags        []string       `json:"tags"`
}

// Product converts the payload into its stored form, applying defaults:
// in_stock true, featured false, empty image and tag lists.
func (np NewProduct) Product() Product {
	p := Product{
		Title:       np.Title,
		Description: np.Description,
		Price:       *np.Price,
		Category:    np.Category,
		Subcategory: np.Subcategory,
		Images:      np.Images,
		InStock:     true,
		Featured:    np.Featured,
		Tags:        np.Tags,
	}
	if np.InStock != nil {
		p.InStock = *np.InStock
	}
	if p.Images == nil {
		p.Images = []ProductImage{}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return p
}
