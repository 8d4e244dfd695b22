package models

// ClientProfile is a prospecting lead shown in the owner-side swipe
// flow.
type ClientProfile struct {
	ID               string          `dynamodbav:"id" json:"id"`
	Name             string          `dynamodbav:"name" json:"name"`
	Avatar           string          `dynamodbav:"avatar" json:"avatar"`
	Bio              string          `dynamodbav:"bio" json:"bio"`
	LookingFor       ListingCategory `dynamodbav:"lookingFor" json:"lookingFor"`
	Budget           string          `dynamodbav:"budget" json:"budget"`
	Location         string          `dynamodbav:"location" json:"location"`
	ReliabilityScore int             `dynamodbav:"reliabilityScore" json:"reliabilityScore"`
}
