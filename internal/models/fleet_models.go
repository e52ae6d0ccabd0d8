package models

import "time"

// Car is a vehicle registered by a company, counted against the plan's car limit.
type Car struct {
	ID          string    `json:"id" firestore:"-"`
	CompanyID   string    `json:"companyId" firestore:"companyId"`
	Name        string    `json:"name" firestore:"name"`
	PlateNumber string    `json:"plateNumber" firestore:"plateNumber"`
	Model       string    `json:"model,omitempty" firestore:"model,omitempty"`
	Year        int       `json:"year,omitempty" firestore:"year,omitempty"`
	FuelType    string    `json:"fuelType,omitempty" firestore:"fuelType,omitempty"` // e.g. "91", "95", "diesel"
	DriverName  string    `json:"driverName,omitempty" firestore:"driverName,omitempty"`
	DriverPhone string    `json:"driverPhone,omitempty" firestore:"driverPhone,omitempty"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt   time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

// Station is a fuel station operated by a service-distributer.
type Station struct {
	ID            string    `json:"id" firestore:"-"`
	DistributorID string    `json:"distributorId" firestore:"distributorId"`
	Name          string    `json:"name" firestore:"name"`
	Address       string    `json:"address,omitempty" firestore:"address,omitempty"`
	Latitude      float64   `json:"latitude,omitempty" firestore:"latitude,omitempty"`
	Longitude     float64   `json:"longitude,omitempty" firestore:"longitude,omitempty"`
	FuelTypes     []string  `json:"fuelTypes,omitempty" firestore:"fuelTypes,omitempty"`
	IsActive      bool      `json:"isActive" firestore:"isActive"`
	CreatedAt     time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt     time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}
