package models

// MessageResponse ใช้เป็นโครงสร้าง JSON Response ที่ Swagger ใช้
type MessageResponse struct {
	Message string `json:"message" example:"Signed up emma@mergington.edu for Chess Club"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Redis  string `json:"redis,omitempty" example:"up"`
}
