package model

import "github.com/shopspring/decimal"

type CampaignType string

const (
	CampaignDiscount  CampaignType = "discount"
	CampaignPromotion CampaignType = "promotion"
	CampaignSeasonal  CampaignType = "seasonal"
	CampaignClearance CampaignType = "clearance"
)

type AssignmentType string

const (
	AssignProduct  AssignmentType = "product"
	AssignCustomer AssignmentType = "customer"
)

// Campaign merges product campaigns and customer special offers.
// IsActive is computed when the record is built, not on every read.
type Campaign struct {
	ID             string          `json:"id"`
	Name           string          `json:"name" validate:"required"`
	Description    string          `json:"description"`
	Type           CampaignType    `json:"type" validate:"required,oneof=discount promotion seasonal clearance"`
	AssignmentType AssignmentType  `json:"assignmentType" validate:"required,oneof=product customer"`
	Percentage     decimal.Decimal `json:"percentage"`
	BuyQty         *int            `json:"buyQty" validate:"omitempty,gt=0"`
	GetQty         *int            `json:"getQty" validate:"omitempty,gt=0"`
	StartDate      string          `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate        string          `json:"endDate" validate:"required,datetime=2006-01-02"`
	ProductIDs     []string        `json:"productIds"`
	CustomerIDs    []string        `json:"customerIds"`
	IsActive       bool            `json:"isActive"`
}

func (c Campaign) Key() string { return c.ID }
