package models

const (
	PropertiesCollection = "properties"

	PropertyOwnerField  = "owner_email"
	PropertyPostedField = "postedDate"
)
