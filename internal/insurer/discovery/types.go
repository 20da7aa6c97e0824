package discovery

// Policy is the extracted shape of a Discovery Insure policy schedule. Fields
// the document did not yield stay null in the JSON output.
type Policy struct {
	Insurer               string             `json:"insurer"`
	PlanNumber            *string            `json:"planNumber"`
	PlanType              *string            `json:"planType"`
	QuoteEffectiveDate    *string            `json:"quoteEffectiveDate"`
	CommencementDate      *string            `json:"commencementDate"`
	ValidityPeriod        string             `json:"validityPeriod"`
	Planholder            Planholder         `json:"planholder"`
	Payment               Payment            `json:"payment"`
	FinancialAdviser      Adviser            `json:"financialAdviser"`
	MotorVehicles         []*Vehicle         `json:"motorVehicles"`
	Buildings             []*Building        `json:"buildings"`
	HouseholdContents     *HouseholdContents `json:"householdContents"`
	PersonalLiability     *Liability         `json:"personalLiability"`
	BenefitsAtNoCost      []string           `json:"benefitsIncludedAtNoCost"`
	AdditionalBenefits    map[string]any     `json:"additionalBenefits"`
	VitalityDrive         VitalityDrive      `json:"vitalityDrive"`
	Sasria                *float64           `json:"sasria"`
	Commission            Commission         `json:"commission"`
	CurrentMonthlyPremium *float64           `json:"currentMonthlyPremium"`
}

type Planholder struct {
	Name                   *string `json:"name"`
	PlanholderType         *string `json:"planholderType"`
	IDNumber               *string `json:"idNumber"`
	DateOfBirth            *string `json:"dateOfBirth"`
	MaritalStatus          *string `json:"maritalStatus"`
	MaidenName             *string `json:"maidenName"`
	ResidentialAddress     *string `json:"residentialAddress"`
	PostalAddress          *string `json:"postalAddress"`
	Contact                Contact `json:"contact"`
	PreferredCommunication *string `json:"preferredCommunication"`
	ElectronicMarketing    *string `json:"electronicMarketing"`
}

type Contact struct {
	HomePhone *string `json:"homePhone"`
	WorkPhone *string `json:"workPhone"`
	Cellphone *string `json:"cellphone"`
	Email     *string `json:"email"`
}

type Payment struct {
	PaymentType      *string `json:"paymentType"`
	PayerName        *string `json:"payerName"`
	PayerIDNumber    *string `json:"payerIdNumber"`
	PayerDateOfBirth *string `json:"payerDateOfBirth"`
	PayerGender      *string `json:"payerGender"`
	AccountHolder    *string `json:"accountHolder"`
	AccountNumber    *string `json:"accountNumber"`
	Bank             *string `json:"bank"`
	AccountType      *string `json:"accountType"`
	BranchNameAndCode *string `json:"branchNameAndCode"`
	DebitDay         *int    `json:"debitDay"`
	PaymentFrequency *string `json:"paymentFrequency"`
}

type Adviser struct {
	Name            *string `json:"name"`
	Code            *string `json:"code"`
	CommissionSplit *string `json:"commissionSplit"`
}

type Vehicle struct {
	Make                  string         `json:"make"`
	Model                 string         `json:"model"`
	Registration          string         `json:"registration"`
	PrimaryDriver         *string        `json:"primaryDriver"`
	CoverType             string         `json:"coverType"`
	EffectiveDate         *string        `json:"effectiveDate"`
	Premium               *float64       `json:"premium"`
	CarHire               bool           `json:"carHire"`
	StolenVehicleRecovery bool           `json:"stolenVehicleRecovery"`
	SvrPremium            *float64       `json:"svrPremium,omitempty"`
	YearOfManufacture     *int           `json:"yearOfManufacture,omitempty"`
	VinNumber             *string        `json:"vinNumber,omitempty"`
	EngineNumber          *string        `json:"engineNumber,omitempty"`
	Colour                *string        `json:"colour,omitempty"`
	Excess                *VehicleExcess `json:"excess,omitempty"`
}

type VehicleExcess struct {
	Basic *float64 `json:"basic"`
	Total *float64 `json:"total,omitempty"`
}

type Building struct {
	Address       string   `json:"address"`
	CoverType     string   `json:"coverType"`
	EffectiveDate *string  `json:"effectiveDate"`
	SumInsured    *float64 `json:"sumInsured"`
	Premium       *float64 `json:"premium"`
}

type HouseholdContents struct {
	Address             *string          `json:"address"`
	CoverType           string           `json:"coverType"`
	EffectiveDate       *string          `json:"effectiveDate"`
	SumInsured          *float64         `json:"sumInsured"`
	ComprehensivePremium *float64        `json:"comprehensivePremium"`
	Premium             *float64         `json:"premium,omitempty"`
	AccidentalDamage    AccidentalDamage `json:"accidentalDamage"`
}

type AccidentalDamage struct {
	Included bool     `json:"included"`
	Premium  *float64 `json:"premium"`
}

type Liability struct {
	SumInsured    *float64 `json:"sumInsured"`
	Premium       *float64 `json:"premium"`
	EffectiveDate *string  `json:"effectiveDate"`
}

type VitalityDrive struct {
	Status     *string  `json:"status"`
	Premium    *float64 `json:"premium"`
	RewardType *string  `json:"rewardType"`
	Members    []string `json:"members"`
}

type Commission struct {
	MaximumCommission *float64        `json:"maximumCommission"`
	VatIncluded       bool            `json:"vatIncluded"`
	Rates             CommissionRates `json:"rates"`
}

type CommissionRates struct {
	NonMotor       *string `json:"nonMotor"`
	Motor          *string `json:"motor"`
	NonMotorSasria *string `json:"nonMotorSasria"`
	MotorSasria    *string `json:"motorSasria"`
	Vitalitydrive  *string `json:"vitalitydrive"`
}
