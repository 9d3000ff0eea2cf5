// Package model defines the data models for the application.
// This file defines the Construction Phase Plan report document and its
// optional sections. Every section is a pointer so that absent sections
// decode to nil; unknown JSON properties are dropped by the decoder and
// missing keys are tolerated, which keeps historical records with partial
// data renderable.
package model

// ReportDocument is the input aggregate for PDF generation: a sparse
// collection of optional, independently shaped sections. It carries no
// identity of its own and is never mutated by the rendering pipeline.
type ReportDocument struct {
	SiteInformation      *SiteInformation      `json:"site_information,omitempty"`
	ProjectDescription   *ProjectDescription   `json:"project_description,omitempty"`
	HoursTeam            *HoursTeam            `json:"hours_team,omitempty"`
	ManagementOfWork     *ManagementOfWork     `json:"management_of_work,omitempty"`
	ManagementStructure  *ManagementStructure  `json:"management_structure,omitempty"`
	SiteRules            *SiteRules            `json:"site_rules,omitempty"`
	Arrangements         *Arrangements         `json:"arrangements,omitempty"`
	SiteInduction        *SiteInduction        `json:"site_induction,omitempty"`
	WelfareArrangements  *WelfareArrangements  `json:"welfare_arrangements,omitempty"`
	FirstAidArrangements *FirstAidArrangements `json:"first_aid_arrangements,omitempty"`
	RescuePlan           *RescuePlan           `json:"rescue_plan,omitempty"`
	SpecificMeasures     *SpecificMeasures     `json:"specific_measures,omitempty"`
	HazardIdentification *HazardIdentification `json:"hazard_identification,omitempty"`
	Hazards              HazardList            `json:"hazards,omitempty"`
	HighRiskWork         *OptionSelection      `json:"high_risk_work,omitempty"`
	NotifiableWork       *OptionSelection      `json:"notifiable_work,omitempty"`
	Contractors          []Contractor          `json:"contractors,omitempty"`
	MonitoringReview     *MonitoringReview     `json:"monitoring_review,omitempty"`
}

// Address is the postal address block used by the Site Information section
type Address struct {
	Line1    string `json:"line1,omitempty"`
	Line2    string `json:"line2,omitempty"`
	Town     string `json:"town,omitempty"`
	County   string `json:"county,omitempty"`
	Postcode string `json:"postcode,omitempty"`
}

// SiteInformation describes the site being worked on
type SiteInformation struct {
	Address            *Address `json:"address,omitempty"`
	SiteManager        string   `json:"siteManager,omitempty"`
	SitePhone          string   `json:"sitePhone,omitempty"`
	AccessRestrictions string   `json:"accessRestrictions,omitempty"`
}

// ProjectDescription describes the project scope and timeline
type ProjectDescription struct {
	Description      string `json:"description,omitempty"`
	ClientName       string `json:"clientName,omitempty"`
	StartDate        string `json:"startDate,omitempty"`
	ExpectedDuration string `json:"expectedDuration,omitempty"`
}

// HoursTeam covers working hours and the key team members
type HoursTeam struct {
	WorkingHours   string `json:"workingHours,omitempty"`
	KeyTeamMembers string `json:"keyTeamMembers,omitempty"`
}

// ManagementOfWork describes how the work is run day to day
type ManagementOfWork struct {
	HowWorkIsManaged         string `json:"howWorkIsManaged,omitempty"`
	SupervisionArrangements  string `json:"supervisionArrangements,omitempty"`
	TrainingRequirements     string `json:"trainingRequirements,omitempty"`
	CommunicationArrangement string `json:"communicationArrangement,omitempty"`
}

// ManagementStructure names the CDM duty holders
type ManagementStructure struct {
	PrincipalDesigner   string `json:"principalDesigner,omitempty"`
	PrincipalContractor string `json:"principalContractor,omitempty"`
	SiteSupervisor      string `json:"siteSupervisor,omitempty"`
}

// SiteRules carries the rules and PPE requirements in force on site
type SiteRules struct {
	GeneralRules    string `json:"generalRules,omitempty"`
	PPERequirements string `json:"ppeRequirements,omitempty"`
	RestrictedAreas string `json:"restrictedAreas,omitempty"`
}

// Arrangements covers cooperation, consultation and security arrangements
type Arrangements struct {
	LiaisonArrangements      string `json:"liaisonArrangements,omitempty"`
	ConsultationArrangements string `json:"consultationArrangements,omitempty"`
	SiteSecurity             string `json:"siteSecurity,omitempty"`
}

// SiteInduction describes the induction given to everyone entering the site
type SiteInduction struct {
	InductionTopics []string `json:"inductionTopics,omitempty"`
	InductionLead   string   `json:"inductionLead,omitempty"`
}

// WelfareArrangements lists the welfare facilities provided
type WelfareArrangements struct {
	Toilets            string `json:"toilets,omitempty"`
	RestAreas          string `json:"restAreas,omitempty"`
	DrinkingWater      string `json:"drinkingWater,omitempty"`
	ChangingFacilities string `json:"changingFacilities,omitempty"`
}

// FirstAidArrangements covers first aid provision and accident reporting
type FirstAidArrangements struct {
	FirstAiders         string `json:"firstAiders,omitempty"`
	FirstAidKitLocation string `json:"firstAidKitLocation,omitempty"`
	NearestHospital     string `json:"nearestHospital,omitempty"`
	AccidentReporting   string `json:"accidentReporting,omitempty"`
}

// RescuePlan describes emergency rescue arrangements
type RescuePlan struct {
	RescueArrangements string `json:"rescueArrangements,omitempty"`
	EmergencyContacts  string `json:"emergencyContacts,omitempty"`
}

// SpecificMeasures lists measures specific to this project
type SpecificMeasures struct {
	Measures      []string `json:"measures,omitempty"`
	ResidualRisks string   `json:"residualRisks,omitempty"`
}

// OptionSelection is the shape shared by the High Risk Construction Work
// and Notifiable Work sections: an array of opaque option codes mapped to
// long-form regulatory text at render time. An empty or absent selection
// is valid and renders a fixed placeholder.
type OptionSelection struct {
	SelectedOptions []string `json:"selectedOptions,omitempty"`
}

// Contractor is one appointed contractor record
type Contractor struct {
	Name    string `json:"name,omitempty"`
	Trade   string `json:"trade,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// MonitoringReview describes how the plan is kept up to date
type MonitoringReview struct {
	InspectionSchedule string `json:"inspectionSchedule,omitempty"`
	ReviewFrequency    string `json:"reviewFrequency,omitempty"`
	ResponsiblePerson  string `json:"responsiblePerson,omitempty"`
}
