package models

// ListingCategory is the closed set of marketplace verticals.
type ListingCategory string

const (
	CategoryProperty ListingCategory = "property"
	CategoryMoto     ListingCategory = "moto"
	CategoryBicycle  ListingCategory = "bicycle"
	CategoryTasker   ListingCategory = "tasker"
)

// AllCategories lists every valid category in display order.
var AllCategories = []ListingCategory{CategoryProperty, CategoryMoto, CategoryBicycle, CategoryTasker}

// Valid reports whether c is one of the known categories.
func (c ListingCategory) Valid() bool {
	switch c {
	case CategoryProperty, CategoryMoto, CategoryBicycle, CategoryTasker:
		return true
	}
	return false
}

// TransactionType describes how a listing is offered.
type TransactionType string

const (
	TransactionRent    TransactionType = "rent"
	TransactionSale    TransactionType = "sale"
	TransactionBoth    TransactionType = "both"
	TransactionProject TransactionType = "project"
	TransactionHourly  TransactionType = "hourly"
)

// PropertyDetails carries real-estate specific attributes.
type PropertyDetails struct {
	Bedrooms  int `dynamodbav:"bedrooms" json:"bedrooms"`
	Bathrooms int `dynamodbav:"bathrooms" json:"bathrooms"`
	Sqft      int `dynamodbav:"sqft" json:"sqft"`
}

// VehicleDetails carries vehicle specific attributes.
type VehicleDetails struct {
	Year       int    `dynamodbav:"year" json:"year"`
	Mileage    string `dynamodbav:"mileage" json:"mileage"`
	EngineSize string `dynamodbav:"engineSize" json:"engineSize"`
}

// BicycleDetails carries bicycle specific attributes.
type BicycleDetails struct {
	FrameMaterial string `dynamodbav:"frameMaterial" json:"frameMaterial"`
	Weight        string `dynamodbav:"weight" json:"weight"`
}

// TaskerDetails carries freelance-task specific attributes.
type TaskerDetails struct {
	Skills          []string `dynamodbav:"skills" json:"skills"`
	ExperienceLevel string   `dynamodbav:"experienceLevel" json:"experienceLevel"`
	HourlyRate      string   `dynamodbav:"hourlyRate" json:"hourlyRate"`
	ProjectFee      string   `dynamodbav:"projectFee" json:"projectFee"`
	Duration        string   `dynamodbav:"duration" json:"duration"`
}

// Listing is a catalog item in one of the four categories. Exactly one
// of the detail pointers is set, and only when it matches Category.
type Listing struct {
	ID              string          `dynamodbav:"id" json:"id"`
	Title           string          `dynamodbav:"title" json:"title"`
	Category        ListingCategory `dynamodbav:"category" json:"category"`
	Price           string          `dynamodbav:"price" json:"price"`
	Location        string          `dynamodbav:"location" json:"location"`
	Image           string          `dynamodbav:"image" json:"image"`
	Description     string          `dynamodbav:"description" json:"description"`
	Features        []string        `dynamodbav:"features,omitempty" json:"features,omitempty"`
	Tags            []string        `dynamodbav:"tags" json:"tags"`
	OwnerID         string          `dynamodbav:"ownerId" json:"ownerId"`
	TransactionType TransactionType `dynamodbav:"transactionType" json:"transactionType"`

	Property *PropertyDetails `dynamodbav:"property,omitempty" json:"property,omitempty"`
	Vehicle  *VehicleDetails  `dynamodbav:"vehicle,omitempty" json:"vehicle,omitempty"`
	Bicycle  *BicycleDetails  `dynamodbav:"bicycle,omitempty" json:"bicycle,omitempty"`
	Tasker   *TaskerDetails   `dynamodbav:"tasker,omitempty" json:"tasker,omitempty"`
}
