package hollard

// Policy is the extracted shape of a Hollard Private Portfolio schedule.
type Policy struct {
	Insurer           string              `json:"insurer"`
	DocumentType      string              `json:"documentType"`
	QuoteNumber       *string             `json:"quoteNumber"`
	PolicyType        *string             `json:"policyType"`
	PeriodOfInsurance *string             `json:"periodOfInsurance"`
	StartDate         *string             `json:"startDate"`
	Policyholder      Policyholder        `json:"policyholder"`
	Broker            Party               `json:"broker"`
	InsurerDetails    Party               `json:"insurerDetails"`
	Administrator     Party               `json:"administrator"`
	PremiumSchedule   PremiumSchedule     `json:"premiumSchedule"`
	HouseholdContents []*ContentsItem     `json:"householdContents"`
	AllRisks          []*AllRisksItem     `json:"allRisks"`
	PersonalLiability *Liability          `json:"personalLiability"`
	MotorVehicles     []*Vehicle          `json:"motorVehicles"`
	TotalPremium      *float64            `json:"totalPremium"`
	TotalFees         *float64            `json:"totalFees"`
	Sasria            *float64            `json:"sasria"`
	GrandTotal        *float64            `json:"grandTotal"`
}

type Policyholder struct {
	Name        *string            `json:"name"`
	Address     PolicyholderAddress `json:"address"`
	Contact     PolicyholderContact `json:"contact"`
	DateOfBirth *string            `json:"dateOfBirth"`
}

type PolicyholderAddress struct {
	Physical *string `json:"physical"`
	Postal   *string `json:"postal"`
}

type PolicyholderContact struct {
	Work  *string `json:"work"`
	Home  *string `json:"home"`
	Fax   *string `json:"fax"`
	Cell  *string `json:"cell"`
	Email *string `json:"email"`
}

// Party covers the broker, insurer and administrator blocks, which share the
// same layout in the schedule.
type Party struct {
	Company            *string      `json:"company"`
	Branch             *string      `json:"branch,omitempty"`
	Address            *string      `json:"address"`
	Contact            PartyContact `json:"contact"`
	RegistrationNumber *string      `json:"registrationNumber,omitempty"`
	VatNumber          *string      `json:"vatNumber,omitempty"`
	FspLicence         *string      `json:"fspLicence"`
}

type PartyContact struct {
	Tel     *string `json:"tel"`
	Fax     *string `json:"fax,omitempty"`
	Email   *string `json:"email"`
	Website *string `json:"website,omitempty"`
}

type PremiumSchedule struct {
	Sections           []*ScheduleSection `json:"sections"`
	TotalPremium       *float64           `json:"totalPremium"`
	TotalFees          *float64           `json:"totalFees"`
	InsurancePayment   *float64           `json:"insurancePayment"`
	Sasria             *float64           `json:"sasria"`
	Subtotal           *float64           `json:"subtotal"`
	AdditionalServices *float64           `json:"additionalServices"`
	GrandTotal         *float64           `json:"grandTotal"`
	VatAmount          *float64           `json:"vatAmount"`
	CommissionAmount   *float64           `json:"commissionAmount"`
}

type ScheduleSection struct {
	Number         int      `json:"number"`
	Name           string   `json:"name"`
	Included       bool     `json:"included"`
	SasriaIncluded bool     `json:"sasriaIncluded"`
	SumInsured     *float64 `json:"sumInsured"`
	Prorata        *float64 `json:"prorata"`
	MonthlyPremium *float64 `json:"monthlyPremium"`
}

type ContentsItem struct {
	ItemReference    *string                    `json:"itemReference"`
	RiskAddress      *string                    `json:"riskAddress"`
	StartDate        *string                    `json:"startDate"`
	SumInsured       *float64                   `json:"sumInsured"`
	Premium          *float64                   `json:"premium"`
	TypeOfHome       *string                    `json:"typeOfHome"`
	Locality         *string                    `json:"locality"`
	WallConstruction *string                    `json:"wallConstruction"`
	RoofConstruction *string                    `json:"roofConstruction"`
	Occupancy        *string                    `json:"occupancy"`
	CoverOption      *string                    `json:"coverOption"`
	SasriaIncluded   bool                       `json:"sasriaIncluded"`
	SasriaPremium    *float64                   `json:"sasriaPremium"`
	BasicExcess      *float64                   `json:"basicExcess"`
	SecurityMeasures *string                    `json:"securityMeasures"`
	AdditionalCover  map[string]AdditionalCover `json:"additionalCover"`
	TotalPremium     *float64                   `json:"totalPremium,omitempty"`
}

type AdditionalCover struct {
	SumInsured *float64 `json:"sumInsured"`
	Premium    *float64 `json:"premium"`
}

type AllRisksItem struct {
	ItemNumber  string   `json:"itemNumber"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	SumInsured  *float64 `json:"sumInsured"`
	Premium     *float64 `json:"premium"`
}

type Liability struct {
	ItemReference     *string  `json:"itemReference"`
	StartDate         *string  `json:"startDate"`
	SumInsured        *float64 `json:"sumInsured"`
	Premium           *float64 `json:"premium"`
	BusinessLiability bool     `json:"businessLiability"`
}

type Vehicle struct {
	ItemReference                  *string         `json:"itemReference"`
	RiskAddress                    *string         `json:"riskAddress"`
	StartDate                      *string         `json:"startDate"`
	Make                           *string         `json:"make"`
	Model                          *string         `json:"model"`
	YearOfManufacture              *int            `json:"yearOfManufacture"`
	VehicleSourceCode              *string         `json:"vehicleSourceCode"`
	Registration                   *string         `json:"registration"`
	VinNumber                      *string         `json:"vinNumber"`
	EngineNumber                   *string         `json:"engineNumber"`
	MileageRange                   *string         `json:"mileageRange"`
	VehicleCondition               *string         `json:"vehicleCondition"`
	BaseRetailValue                *float64        `json:"baseRetailValue"`
	FinalSumInsured                *float64        `json:"finalSumInsured"`
	FinalSumInsuredWithAccessories *float64        `json:"finalSumInsuredWithAccessories"`
	Premium                        *float64        `json:"premium"`
	CoverDetails                   CoverDetails    `json:"coverDetails"`
	Excess                         VehicleExcess   `json:"excess"`
	RegisteredOwner                RegisteredOwner `json:"registeredOwner"`
	Security                       Security        `json:"security"`
	Driver                         Driver          `json:"driver"`
	TotalPremium                   *float64        `json:"totalPremium"`
}

type CoverDetails struct {
	BasisOfSettlement   *string  `json:"basisOfSettlement"`
	CoverOption         *string  `json:"coverOption"`
	ConditionOfUse      *string  `json:"conditionOfUse"`
	ThirdPartyLiability *float64 `json:"thirdPartyLiability"`
	SasriaIncluded      bool     `json:"sasriaIncluded"`
	SasriaPremium       *float64 `json:"sasriaPremium"`
}

type VehicleExcess struct {
	Basic      *float64 `json:"basic"`
	Additional *int     `json:"additional"`
	Voluntary  *float64 `json:"voluntary"`
}

type RegisteredOwner struct {
	Name        *string `json:"name"`
	DateOfBirth *string `json:"dateOfBirth"`
}

type Security struct {
	FirstTrackingDevice  *string `json:"firstTrackingDevice"`
	SecondTrackingDevice *string `json:"secondTrackingDevice"`
	ImmobiliserRequired  *string `json:"immobiliserRequired"`
	OvernightParking     *string `json:"overnightParking"`
}

type Driver struct {
	Name          *string `json:"name"`
	DateOfBirth   *string `json:"dateOfBirth"`
	Gender        *string `json:"gender"`
	MaritalStatus *string `json:"maritalStatus"`
	LicenseType   *string `json:"licenseType"`
	LicenseIssued *string `json:"licenseIssued"`
}
