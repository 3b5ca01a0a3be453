package model

type Supplier struct {
	ID    string `json:"id"`
	Name  string `json:"name" validate:"required,min=2,max=100"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,phone"`
	City  string `json:"city" validate:"required,min=2,max=100"`
}

func (s Supplier) Key() string { return s.ID }

type CustomerSegment string

const (
	SegmentSME           CustomerSegment = "sme"
	SegmentIndividual    CustomerSegment = "individual"
	SegmentInstitutional CustomerSegment = "institutional"
)

type Customer struct {
	ID      string          `json:"id"`
	Name    string          `json:"name" validate:"required,min=2,max=100"`
	Segment CustomerSegment `json:"segment" validate:"required,oneof=sme individual institutional"`
	Email   string          `json:"email" validate:"required,email"`
	Phone   string          `json:"phone" validate:"required"`
	City    string          `json:"city" validate:"required"`
}

func (c Customer) Key() string { return c.ID }
