package office

import "github.com/c360studio/semstreams/vocabulary"

// Namespace is the base IRI for office vocabulary terms.
const Namespace = "https://conlaw.dev/ontology/office/"

// Person predicates describe a candidate or officeholder.
const (
	// PersonName is the person's display name.
	PersonName = "office.person.name"

	// PersonAge is the person's age in whole years.
	PersonAge = "office.person.age"

	// PersonCitizenYears is how many years the person has been a citizen.
	PersonCitizenYears = "office.person.citizen_years"

	// PersonNaturalBorn indicates natural-born citizenship.
	PersonNaturalBorn = "office.person.natural_born"

	// PersonResidencyYears is years resident within the United States.
	PersonResidencyYears = "office.person.residency_years"

	// PersonInhabitantState is the state the person inhabits when elected.
	PersonInhabitantState = "office.person.inhabitant_state"
)

// Qualification predicates describe eligibility outcomes.
const (
	// QualificationOffice is the office the check was run against.
	QualificationOffice = "office.qualification.office"

	// QualificationEligible is the boolean outcome of the check.
	QualificationEligible = "office.qualification.eligible"

	// QualificationReason explains an ineligible outcome.
	QualificationReason = "office.qualification.reason"
)

func init() {
	vocabulary.Register(PersonName,
		vocabulary.WithDescription("Person display name"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"personName"))

	vocabulary.Register(PersonAge,
		vocabulary.WithDescription("Age in whole years"),
		vocabulary.WithDataType("integer"),
		vocabulary.WithIRI(Namespace+"age"))

	vocabulary.Register(PersonCitizenYears,
		vocabulary.WithDescription("Years of citizenship"),
		vocabulary.WithDataType("integer"),
		vocabulary.WithIRI(Namespace+"citizenYears"))

	vocabulary.Register(PersonNaturalBorn,
		vocabulary.WithDescription("Natural-born citizen flag"),
		vocabulary.WithDataType("boolean"),
		vocabulary.WithIRI(Namespace+"naturalBorn"))

	vocabulary.Register(PersonResidencyYears,
		vocabulary.WithDescription("Years resident within the United States"),
		vocabulary.WithDataType("integer"),
		vocabulary.WithIRI(Namespace+"residencyYears"))

	vocabulary.Register(PersonInhabitantState,
		vocabulary.WithDescription("State inhabited when elected"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"inhabitantState"))

	vocabulary.Register(QualificationOffice,
		vocabulary.WithDescription("Office an eligibility check targets"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"qualificationOffice"))

	vocabulary.Register(QualificationEligible,
		vocabulary.WithDescription("Eligibility check outcome"),
		vocabulary.WithDataType("boolean"),
		vocabulary.WithIRI(Namespace+"eligible"))

	vocabulary.Register(QualificationReason,
		vocabulary.WithDescription("Reason for an ineligible outcome"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"qualificationReason"))
}
