package order

// Collection is the store collection receiving checkout orders.
const Collection = "order"

// DemoOrderID is acknowledged when the order could not be stored.
const DemoOrderID = "demo-order-1234"

// Item is a line of an order. Title, price and image are copied from the
// cart at checkout time and never re-read from the catalog, so an order
// keeps describing what the customer actually saw.
type Item struct {
	ProductID string  `json:"product_id" bson:"product_id"`
	Title     string  `json:"title" bson:"title"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	Price     float64 `json:"price" bson:"price"`
	Image     *string `json:"image" bson:"image"`
}

// Order is a checkout as submitted by the customer. Totals are not computed.
type Order struct {
	Items         []Item `json:"items" bson:"items"`
	CustomerName  string `json:"customer_name" bson:"customer_name"`
	CustomerEmail string `json:"customer_email" bson:"customer_email"`
	Address       string `json:"address" bson:"address"`
	City          string `json:"city" bson:"city"`
	Country       string `json:"country" bson:"country"`
}
