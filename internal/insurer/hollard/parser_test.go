package hollard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polisched/internal/insurer/hollard"
	"polisched/internal/pdftext"
)

const detailsPage = `HOLLARD PRIVATE PORTFOLIO
POLICY SCHEDULE
Quote number : PPQ-12345
Type of policy : Monthly
Period of insurance : (A) 12 months from inception
Start date : 01/03/2024
The policyholder : Mr John Smith
Date of Birth : 15/06/1985
Address details : Physical 12 Oak Street
Parkwood
Sandton
2196
Contact details : Cell 082 555 1234
: E-mail john.smith@example.com`

const partiesPage = `DETAILS OF BROKER AND INSURER
Broker details
Company : Oakfield Brokers (Pty) Ltd
Branch : Johannesburg
Contact details : Tel 011 555 0000
: E-mail broker@oakfield.co.za
FSP Licence Number 12345
Insurer details
Company : The Hollard Insurance Company Ltd
Contact details : Tel 011 351 5000
Website www.hollard.co.za
FSP Licence Number 17698
DETAILS OF ADMINISTRATOR
Company : PortfolioAdmin (Pty) Ltd
Contact details : Work 086 111 2222
: E-mail admin@portfolioadmin.co.za
Website www.portfolioadmin.co.za
FSP Licence Number 44444`

const schedulePage = `PREMIUM SCHEDULE AND INDEX OF COVER
Cover Included Sasria Sum Insured Prorata Monthly Premium
Section 1 Household Contents YES YES R 150 000 R 180.50 R 180.50
Section 2 All Risks YES NO R 25 000 R 95.00 R 95.00
Section 3 Personal Liability YES NO R 5 000 000 R 45.00 R 45.00
Section 4 Motor YES YES R 350 000 R 567.89 R 567.89
Section 5 Watercraft NO NO - R - R -
Total Premium R - R 888.39
Total Fees R - R 60.00
Insurance Payment R - R 948.39
Sasria R - R 12.34
Additional Services Fee R - R 29.00
TOTAL R - R 989.73
NOTE TO POLICYHOLDER
Commission of R133.26 (including VAT of R17.38) is payable to your broker.`

const contentsPage = `HOUSEHOLD CONTENTS
Item Reference : HHC0001
RISK ADDRESS : 12 Oak Street
Parkwood
RISK DETAILS
Start date : 1 March 2024 150 000 180.50
Type of home : House
Locality : Suburban
Wall construction : Brick
Roof construction : Tile
Occupancy : Owner occupied
Cover option : Comprehensive
Sasria included : Yes 5.50
Basic excess : R 500
Minimum security measures : Burglar bars and security gates
Accidental damage extension : Yes 15 000 25.00
Power surge : Yes 10 000 12.50
TOTAL 223.50`

const allRisksPage = `ALL RISKS
Item # Category Description Sum Insured Premium
ALL0001 Clothing/Personal Effects Unspecified 25 000 95.00`

const liabilityPage = `PERSONAL LIABILITY
Item Reference : PL0001
Start date : 1 March 2024
Personal Liability 5 000 000 45.00
Business Liability : No`

const fordPage = `MOTOR
Item Reference : MV0001
RISK ADDRESS : 12 Oak Street
Parkwood
RISK DETAILS
Start date : 1 March 2024 567.89
Make : FORD
Model : FIESTA 1.0 ECOBOOST TREND (2018 - 2021)
Year of manufacture : 2020
Vehicle source code : 04052150
Registration number : CA123456
VIN/Chassis number : WF0ABCDEFG1234567
Engine number : XY98765
Mileage range : Low
Vehicle condition : Good
Base Retail Value : 285 000
Final Sum Insured : 285 000
Final Sum Insured Including Accessories : 290 000
Basis of settlement : Retail value
Cover option : Comprehensive
Condition of use : Private
Liability to third parties : 5 000 000
Sasria included : Yes 7.50
Basic excess : R 4 500
Additional excess : 0
Voluntary excess : R 0
Registered owner : Mr John Smith
Registered owner's date of birth : 15/06/1985
First tracking device type : None
Immobiliser required : Yes
Overnight parking : Locked garage
Driver Name : Jane Smith
Date of Birth : 12 May 1980
Gender : Female
Marital Status : Married
License Type : B
Licence issued : 1998
TOTAL 575.39`

// The second vehicle's driver block spills onto the following page.
const bmwPage = `MOTOR
Item Reference : MV0002
RISK ADDRESS : 12 Oak Street
Parkwood
RISK DETAILS
Start date : 1 March 2024 321.07
Make : BMW
Model : 320I M SPORT (2019 - 2022)
Year of manufacture : 2021
Registration number : CB98765
VIN/Chassis number : WBA12345678901234
Engine number : ZZ11223
Basic excess : R 5 000
Registered owner : Mrs Jane Smith`

const bmwDriverPage = `MOTOR SECTION MV0002 CONTINUED
Driver Name : John Smith
Date of Birth : 3 July 1979
Gender : Male
Marital Status : Married
License Type : EB
Licence issued : 2001
TOTAL 321.07`

func fixtureDoc() *pdftext.Document {
	return &pdftext.Document{
		Pages: map[int]string{
			1: detailsPage,
			2: partiesPage,
			3: schedulePage,
			4: contentsPage,
			5: allRisksPage,
			6: liabilityPage,
			7: fordPage,
			8: bmwPage,
			9: bmwDriverPage,
		},
	}
}

func TestParser_Identify(t *testing.T) {
	p := &hollard.Parser{}
	assert.True(t, p.Identify(fixtureDoc()))
	assert.False(t, p.Identify(&pdftext.Document{Pages: map[int]string{1: "Discovery Insure quote"}}))
}

func TestParser_Parse_PolicyDetails(t *testing.T) {
	policy := parseFixture(t)

	assert.Equal(t, "Hollard Insurance", policy.Insurer)
	assert.Equal(t, "Private Portfolio", policy.DocumentType)
	assertStr(t, "PPQ-12345", policy.QuoteNumber)
	assertStr(t, "Monthly", policy.PolicyType)
	assertStr(t, "12 months from inception", policy.PeriodOfInsurance)
	assertStr(t, "01/03/2024", policy.StartDate)
}

func TestParser_Parse_Policyholder(t *testing.T) {
	holder := parseFixture(t).Policyholder

	assertStr(t, "Mr John Smith", holder.Name)
	assertStr(t, "12 Oak Street, Parkwood, Sandton, 2196", holder.Address.Physical)
	assertStr(t, "0825551234", holder.Contact.Cell)
	assertStr(t, "john.smith@example.com", holder.Contact.Email)
	assertStr(t, "15/06/1985", holder.DateOfBirth)
}

func TestParser_Parse_Parties(t *testing.T) {
	policy := parseFixture(t)

	broker := policy.Broker
	assertStr(t, "Oakfield Brokers (Pty) Ltd", broker.Company)
	assertStr(t, "Johannesburg", broker.Branch)
	assertStr(t, "011 555 0000", broker.Contact.Tel)
	assertStr(t, "broker@oakfield.co.za", broker.Contact.Email)
	assertStr(t, "12345", broker.FspLicence)

	details := policy.InsurerDetails
	assertStr(t, "The Hollard Insurance Company Ltd", details.Company)
	assertStr(t, "011 351 5000", details.Contact.Tel)
	assertStr(t, "www.hollard.co.za", details.Contact.Website)
	assertStr(t, "17698", details.FspLicence)

	admin := policy.Administrator
	assertStr(t, "PortfolioAdmin (Pty) Ltd", admin.Company)
	assertStr(t, "086 111 2222", admin.Contact.Tel)
	assertStr(t, "admin@portfolioadmin.co.za", admin.Contact.Email)
	assertStr(t, "www.portfolioadmin.co.za", admin.Contact.Website)
	assertStr(t, "44444", admin.FspLicence)
}

func TestParser_Parse_PremiumSchedule(t *testing.T) {
	policy := parseFixture(t)
	schedule := policy.PremiumSchedule

	// Only covers marked YES stay on the schedule.
	require.Len(t, schedule.Sections, 4)

	contents := schedule.Sections[0]
	assert.Equal(t, 1, contents.Number)
	assert.Equal(t, "Household Contents", contents.Name)
	assert.True(t, contents.Included)
	assert.True(t, contents.SasriaIncluded)
	assertFloat(t, 150000, contents.SumInsured)
	assertFloat(t, 180.50, contents.Prorata)
	assertFloat(t, 180.50, contents.MonthlyPremium)

	motor := schedule.Sections[3]
	assert.Equal(t, 4, motor.Number)
	assert.Equal(t, "Motor", motor.Name)
	assert.False(t, schedule.Sections[1].SasriaIncluded)
	assertFloat(t, 567.89, motor.MonthlyPremium)

	assertFloat(t, 888.39, schedule.TotalPremium)
	assertFloat(t, 60, schedule.TotalFees)
	assertFloat(t, 948.39, schedule.InsurancePayment)
	assertFloat(t, 12.34, schedule.Sasria)
	assertFloat(t, 29, schedule.AdditionalServices)
	assertFloat(t, 989.73, schedule.GrandTotal)
	assertFloat(t, 17.38, schedule.VatAmount)
	assertFloat(t, 133.26, schedule.CommissionAmount)

	// Schedule totals are mirrored at the top level.
	assertFloat(t, 888.39, policy.TotalPremium)
	assertFloat(t, 60, policy.TotalFees)
	assertFloat(t, 12.34, policy.Sasria)
	assertFloat(t, 989.73, policy.GrandTotal)
}

func TestParser_Parse_HouseholdContents(t *testing.T) {
	policy := parseFixture(t)
	require.Len(t, policy.HouseholdContents, 1)
	item := policy.HouseholdContents[0]

	assertStr(t, "HHC0001", item.ItemReference)
	assertStr(t, "12 Oak Street, Parkwood", item.RiskAddress)
	assertStr(t, "1 March 2024", item.StartDate)
	assertFloat(t, 150000, item.SumInsured)
	assertFloat(t, 180.50, item.Premium)
	assertStr(t, "House", item.TypeOfHome)
	assertStr(t, "Suburban", item.Locality)
	assertStr(t, "Brick", item.WallConstruction)
	assertStr(t, "Tile", item.RoofConstruction)
	assertStr(t, "Owner occupied", item.Occupancy)
	assertStr(t, "Comprehensive", item.CoverOption)
	assert.True(t, item.SasriaIncluded)
	assertFloat(t, 5.50, item.SasriaPremium)
	assertFloat(t, 500, item.BasicExcess)
	assertStr(t, "Burglar bars and security gates", item.SecurityMeasures)
	assertFloat(t, 223.50, item.TotalPremium)

	accidental, ok := item.AdditionalCover["accidentalDamage"]
	require.True(t, ok)
	assertFloat(t, 15000, accidental.SumInsured)
	assertFloat(t, 25, accidental.Premium)

	surge, ok := item.AdditionalCover["powerSurge"]
	require.True(t, ok)
	assertFloat(t, 10000, surge.SumInsured)
	assertFloat(t, 12.50, surge.Premium)
}

func TestParser_Parse_AllRisksAndLiability(t *testing.T) {
	policy := parseFixture(t)

	require.Len(t, policy.AllRisks, 1)
	item := policy.AllRisks[0]
	assert.Equal(t, "ALL0001", item.ItemNumber)
	assert.Equal(t, "Clothing/Personal Effects", item.Category)
	assert.Equal(t, "Unspecified", item.Description)
	assertFloat(t, 25000, item.SumInsured)
	assertFloat(t, 95, item.Premium)

	liability := policy.PersonalLiability
	require.NotNil(t, liability)
	assertStr(t, "PL0001", liability.ItemReference)
	assertStr(t, "1 March 2024", liability.StartDate)
	assertFloat(t, 5000000, liability.SumInsured)
	assertFloat(t, 45, liability.Premium)
	assert.False(t, liability.BusinessLiability)
}

func TestParser_Parse_Vehicles(t *testing.T) {
	policy := parseFixture(t)
	require.Len(t, policy.MotorVehicles, 2)

	ford := policy.MotorVehicles[0]
	assertStr(t, "MV0001", ford.ItemReference)
	assertStr(t, "12 Oak Street, Parkwood", ford.RiskAddress)
	assertStr(t, "1 March 2024", ford.StartDate)
	assertFloat(t, 567.89, ford.Premium)
	assertStr(t, "FORD", ford.Make)
	assertStr(t, "FIESTA 1.0 ECOBOOST TREND (2018 - 2021)", ford.Model)
	if assert.NotNil(t, ford.YearOfManufacture) {
		assert.Equal(t, 2020, *ford.YearOfManufacture)
	}
	assertStr(t, "04052150", ford.VehicleSourceCode)
	assertStr(t, "CA123456", ford.Registration)
	assertStr(t, "WF0ABCDEFG1234567", ford.VinNumber)
	assertStr(t, "XY98765", ford.EngineNumber)
	assertStr(t, "Low", ford.MileageRange)
	assertStr(t, "Good", ford.VehicleCondition)
	assertFloat(t, 285000, ford.BaseRetailValue)
	assertFloat(t, 285000, ford.FinalSumInsured)
	assertFloat(t, 290000, ford.FinalSumInsuredWithAccessories)
	assertFloat(t, 575.39, ford.TotalPremium)

	cover := ford.CoverDetails
	assertStr(t, "Retail value", cover.BasisOfSettlement)
	assertStr(t, "Comprehensive", cover.CoverOption)
	assertStr(t, "Private", cover.ConditionOfUse)
	assertFloat(t, 5000000, cover.ThirdPartyLiability)
	assert.True(t, cover.SasriaIncluded)
	assertFloat(t, 7.50, cover.SasriaPremium)

	assertFloat(t, 4500, ford.Excess.Basic)
	if assert.NotNil(t, ford.Excess.Additional) {
		assert.Equal(t, 0, *ford.Excess.Additional)
	}
	assertFloat(t, 0, ford.Excess.Voluntary)

	assertStr(t, "Mr John Smith", ford.RegisteredOwner.Name)
	assertStr(t, "15/06/1985", ford.RegisteredOwner.DateOfBirth)
	assertStr(t, "None", ford.Security.FirstTrackingDevice)
	assertStr(t, "Yes", ford.Security.ImmobiliserRequired)
	assertStr(t, "Locked garage", ford.Security.OvernightParking)

	assertStr(t, "Jane Smith", ford.Driver.Name)
	assertStr(t, "12 May 1980", ford.Driver.DateOfBirth)
	assertStr(t, "Female", ford.Driver.Gender)
	assertStr(t, "Married", ford.Driver.MaritalStatus)
	assertStr(t, "B", ford.Driver.LicenseType)
	assertStr(t, "1998", ford.Driver.LicenseIssued)

	bmw := policy.MotorVehicles[1]
	assertStr(t, "MV0002", bmw.ItemReference)
	assertStr(t, "BMW", bmw.Make)
	assertStr(t, "320I M SPORT (2019 - 2022)", bmw.Model)
	assertStr(t, "CB98765", bmw.Registration)
	assertFloat(t, 321.07, bmw.Premium)
	assertFloat(t, 5000, bmw.Excess.Basic)

	// Driver details picked up from the continuation page.
	assertStr(t, "John Smith", bmw.Driver.Name)
	assertStr(t, "3 July 1979", bmw.Driver.DateOfBirth)
	assertStr(t, "Male", bmw.Driver.Gender)
	assertStr(t, "EB", bmw.Driver.LicenseType)
	assertStr(t, "2001", bmw.Driver.LicenseIssued)
	assertFloat(t, 321.07, bmw.TotalPremium)
}

func TestParser_Parse_AccessoriesLabelSpacing(t *testing.T) {
	// The accessories sum must parse whether or not the label has a space
	// before the colon.
	for _, label := range []string{
		"Final Sum Insured Including Accessories : 310 000",
		"Final Sum Insured Including Accessories: 310 000",
	} {
		page := `MOTOR
Item Reference : MV0009
Make : TOYOTA
` + label + `
Basis of settlement : Retail value`

		p := &hollard.Parser{}
		out, err := p.Parse(&pdftext.Document{Pages: map[int]string{1: page}})
		require.NoError(t, err)
		policy := out.(*hollard.Policy)
		require.Len(t, policy.MotorVehicles, 1, label)
		assertFloat(t, 310000, policy.MotorVehicles[0].FinalSumInsuredWithAccessories)
	}
}

func TestParser_Parse_DedupesUnregisteredVehicles(t *testing.T) {
	page := `MOTOR
Item Reference : MV0003
Make : SUZUKI
Model : SWIFT 1.2 GL (2020 - 2023)`

	p := &hollard.Parser{}
	out, err := p.Parse(&pdftext.Document{Pages: map[int]string{1: page, 2: page}})
	require.NoError(t, err)

	policy := out.(*hollard.Policy)
	require.Len(t, policy.MotorVehicles, 1)
	assertStr(t, "SUZUKI", policy.MotorVehicles[0].Make)
	assert.Nil(t, policy.MotorVehicles[0].Registration)
}

func TestParser_Parse_EmptyDocument(t *testing.T) {
	p := &hollard.Parser{}
	out, err := p.Parse(&pdftext.Document{Pages: map[int]string{1: "HOLLARD PRIVATE PORTFOLIO"}})
	require.NoError(t, err)

	policy, ok := out.(*hollard.Policy)
	require.True(t, ok)
	assert.Nil(t, policy.QuoteNumber)
	assert.Empty(t, policy.HouseholdContents)
	assert.Empty(t, policy.MotorVehicles)
	assert.Nil(t, policy.TotalPremium)
}

func parseFixture(t *testing.T) *hollard.Policy {
	t.Helper()
	p := &hollard.Parser{}
	out, err := p.Parse(fixtureDoc())
	require.NoError(t, err)
	policy, ok := out.(*hollard.Policy)
	require.True(t, ok)
	return policy
}

func assertStr(t *testing.T, want string, got *string) {
	t.Helper()
	if assert.NotNil(t, got) {
		assert.Equal(t, want, *got)
	}
}

func assertFloat(t *testing.T, want float64, got *float64) {
	t.Helper()
	if assert.NotNil(t, got) {
		assert.InDelta(t, want, *got, 0.001)
	}
}
