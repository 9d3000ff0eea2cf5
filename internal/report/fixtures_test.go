package report

import (
	"fmt"
	"testing"
	"time"

	"github.com/sitesafe/sitesafe/internal/model"
)

// pinnedDate fixes document metadata timestamps so repeated renders of
// the same input are byte-identical.
var pinnedDate = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func testGenerator() *Generator {
	return NewGenerator(Options{CreationDate: pinnedDate})
}

func testProfile() *model.CompanyProfile {
	return &model.CompanyProfile{
		Name:          "Acme Builders Ltd",
		AddressLine1:  "Unit 4, Riverside Park",
		Town:          "Leeds",
		Postcode:      "LS1 4DY",
		Phone:         "0113 496 0000",
		Email:         "office@acmebuilders.example",
		CompanyNumber: "12345678",
		VATNumber:     "GB987654321",
	}
}

func fullDocument() *model.ReportDocument {
	return &model.ReportDocument{
		SiteInformation: &model.SiteInformation{
			Address: &model.Address{
				Line1:    "22 Harbour Street",
				Town:     "Whitby",
				County:   "North Yorkshire",
				Postcode: "YO21 1DN",
			},
			SiteManager:        "J. Metcalfe",
			SitePhone:          "07700 900123",
			AccessRestrictions: "Deliveries via rear access only, no parking on Harbour Street",
		},
		ProjectDescription: &model.ProjectDescription{
			Description:      "Two storey rear extension with internal structural alterations",
			ClientName:       "Mrs P. Hargreaves",
			StartDate:        "3 June 2024",
			ExpectedDuration: "14 weeks",
		},
		HoursTeam: &model.HoursTeam{
			WorkingHours:   "Mon-Fri 08:00-17:00, Sat 08:00-13:00",
			KeyTeamMembers: "J. Metcalfe (site manager), D. Okafor (foreman)",
		},
		ManagementOfWork: &model.ManagementOfWork{
			HowWorkIsManaged:        "Daily briefings and a weekly programme review",
			SupervisionArrangements: "Foreman present at all times when work is underway",
			TrainingRequirements:    "CSCS cards required for all operatives",
		},
		ManagementStructure: &model.ManagementStructure{
			PrincipalDesigner:   "Harrison Design Partnership",
			PrincipalContractor: "Acme Builders Ltd",
			SiteSupervisor:      "D. Okafor",
		},
		SiteRules: &model.SiteRules{
			GeneralRules:    "No smoking on site. Sign in and out at the site office.",
			PPERequirements: "Hard hats, hi-vis and safety boots at all times",
			RestrictedAreas: "Scaffold loading bay is out of bounds to visitors",
		},
		Arrangements: &model.Arrangements{
			LiaisonArrangements:      "Weekly call with the principal designer",
			ConsultationArrangements: "Toolbox talks every Monday morning",
			SiteSecurity:             "Heras fencing with locked gate outside working hours",
		},
		SiteInduction: &model.SiteInduction{
			InductionTopics: []string{"Site rules", "Emergency procedures", "Welfare facilities"},
			InductionLead:   "J. Metcalfe",
		},
		WelfareArrangements: &model.WelfareArrangements{
			Toilets:       "Portable toilet adjacent to site office",
			RestAreas:     "Mess cabin with seating for eight",
			DrinkingWater: "Mains supply in mess cabin",
		},
		FirstAidArrangements: &model.FirstAidArrangements{
			FirstAiders:         "D. Okafor, L. Simmonds",
			FirstAidKitLocation: "Site office and mess cabin",
			NearestHospital:     "Whitby Hospital, Spring Hill",
			AccidentReporting:   "All incidents recorded in the site accident book",
		},
		RescuePlan: &model.RescuePlan{
			RescueArrangements: "Scaffold rescue by trained operatives using the site MEWP",
			EmergencyContacts:  "Site manager 07700 900123, office 0113 496 0000",
		},
		SpecificMeasures: &model.SpecificMeasures{
			Measures:      []string{"Dust suppression during cutting", "Segregated pedestrian route"},
			ResidualRisks: "Noise affecting neighbouring properties",
		},
		HazardIdentification: &model.HazardIdentification{
			WorkingAtHeight: model.HeightFlags{Scaffolding: true, RoofWork: true},
			SiteEnvironment: model.EnvironmentFlags{ManualHandling: true, PublicAccess: true},
		},
		Hazards: model.HazardList{
			{
				Title:            "Falls from scaffold",
				WhoMightBeHarmed: "Operatives, visitors",
				HowMightBeHarmed: "Falls from height during external works",
				BeforeLikelihood: "4",
				BeforeSeverity:   "5",
				BeforeTotal:      "20",
				ControlMeasures: []model.ControlMeasure{
					{Description: "Scaffold erected and inspected by competent contractor"},
					{Description: "Weekly scaffold inspections recorded"},
				},
				AfterLikelihood: "2",
				AfterSeverity:   "5",
				AfterTotal:      "10",
			},
			{
				Title:            "Manual handling",
				WhoMightBeHarmed: "Operatives",
				HowMightBeHarmed: "Musculoskeletal injury moving blocks and beams",
				BeforeLikelihood: "3",
				BeforeSeverity:   "3",
				BeforeTotal:      "9",
				ControlMeasures: []model.ControlMeasure{
					{Description: "Telehandler used for loading out"},
				},
				AfterLikelihood: "2",
				AfterSeverity:   "3",
				AfterTotal:      "6",
			},
		},
		HighRiskWork: &model.OptionSelection{
			SelectedOptions: []string{"risk_of_falling", "deep_excavations"},
		},
		NotifiableWork: &model.OptionSelection{
			SelectedOptions: []string{"over_30_days"},
		},
		Contractors: []model.Contractor{
			{Name: "Sparks Electrical", Trade: "Electrician", Phone: "07700 900456", Email: "info@sparks.example"},
			{Name: "FlowRight Plumbing", Trade: "Plumber", Phone: "07700 900789"},
		},
		MonitoringReview: &model.MonitoringReview{
			InspectionSchedule: "Weekly site inspection every Friday",
			ReviewFrequency:    "Plan reviewed monthly or after any significant change",
			ResponsiblePerson:  "J. Metcalfe",
		},
	}
}

func manyHazards(n int) model.HazardList {
	list := make(model.HazardList, 0, n)
	for i := 0; i < n; i++ {
		list = append(list, model.HazardRecord{
			Title:            fmt.Sprintf("Hazard %d", i+1),
			WhoMightBeHarmed: "Operatives and visitors",
			HowMightBeHarmed: "Contact with moving plant during deliveries and loading operations",
			BeforeLikelihood: "3",
			BeforeSeverity:   "4",
			BeforeTotal:      "12",
			ControlMeasures: []model.ControlMeasure{
				{Description: "Banksman controls all vehicle movements"},
				{Description: "Segregated pedestrian walkways maintained"},
			},
			AfterLikelihood: "1",
			AfterSeverity:   "4",
			AfterTotal:      "4",
		})
	}
	return list
}

func descriptorFor(t *testing.T, kind SectionKind) SectionDescriptor {
	t.Helper()
	for _, d := range Catalog {
		if d.Kind == kind {
			return d
		}
	}
	t.Fatalf("no catalog entry for kind %s", kind)
	return SectionDescriptor{}
}
