package distributor

// Collection is the store collection receiving distributor leads.
const Collection = "distributorapplication"

// DemoApplicationID is acknowledged when the application could not be stored.
const DemoApplicationID = "demo-application-1234"

// Application is a lead submitted by a prospective distributor. It is
// written once and never read back by the service.
type Application struct {
	Name     string  `json:"name" bson:"name"`
	Email    string  `json:"email" bson:"email"`
	Company  *string `json:"company" bson:"company"`
	Website  *string `json:"website" bson:"website"`
	Location *string `json:"location" bson:"location"`
	Message  *string `json:"message" bson:"message"`
}
