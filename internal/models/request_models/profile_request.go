package request_models

type UpdatePhoneRequest struct {
	Phone string `json:"phone" binding:"required"`
}

type UpdateDateOfBirthRequest struct {
	DateOfBirth string `json:"date_of_birth" binding:"required"`
}

type UpdateAddressRequest struct {
	Address string `json:"address" binding:"required"`
}
