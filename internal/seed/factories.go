package seed

import (
	"fmt"
	"strings"
	"time"

	"kapm/internal/models"
	"kapm/internal/validation"

	"github.com/brianvoe/gofakeit/v6"
)

var courts = []string{
	"Sąd Rejonowy dla m.st. Warszawy, XVIII Wydział Gospodarczy",
	"Sąd Rejonowy dla Krakowa-Śródmieścia, VIII Wydział Gospodarczy",
	"Sąd Rejonowy Gdańsk-Północ, VI Wydział Gospodarczy",
	"Sąd Rejonowy Poznań-Stare Miasto, XI Wydział Gospodarczy",
	"Sąd Rejonowy dla Wrocławia-Fabrycznej, VIII Wydział Gospodarczy",
}

var blogTopics = []string{
	"Upadłość konsumencka krok po kroku",
	"Czym jest postępowanie sanacyjne",
	"Układ z wierzycielami w praktyce",
	"Pre-pack, czyli przygotowana likwidacja",
	"Jak przygotować wniosek o ogłoszenie upadłości",
	"Obowiązki syndyka w postępowaniu upadłościowym",
	"Restrukturyzacja gospodarstwa rolnego",
	"Zgłoszenie wierzytelności po nowelizacji",
	"Plan spłaty wierzycieli w upadłości konsumenckiej",
	"Uproszczone postępowanie restrukturyzacyjne",
}

var companySuffixes = []string{"Sp. z o.o.", "S.A.", "Sp. k.", "Sp. j."}

// caseNumber builds a docket number in the convention used by Polish
// commercial courts, e.g. "VIII GUp 123/24".
func caseNumber(kind string, seq int, year time.Time) string {
	divisions := []string{"V", "VI", "VIII", "XI", "XVIII"}
	division := divisions[seq%len(divisions)]
	return fmt.Sprintf("%s %s %d/%02d", division, kind, seq, year.Year()%100)
}

func fakePESEL(f *gofakeit.Faker) string {
	digits := make([]byte, 11)
	for i := range digits {
		digits[i] = byte('0' + f.Number(0, 9))
	}
	return string(digits)
}

func fakeNIP(f *gofakeit.Faker) string {
	digits := make([]byte, 10)
	for i := range digits {
		digits[i] = byte('0' + f.Number(0, 9))
	}
	return string(digits)
}

func fakeRegon(f *gofakeit.Faker) string {
	digits := make([]byte, 9)
	for i := range digits {
		digits[i] = byte('0' + f.Number(0, 9))
	}
	return string(digits)
}

func fakeKRS(f *gofakeit.Faker) string {
	return fmt.Sprintf("%010d", f.Number(1, 999999))
}

func makeUser(f *gofakeit.Faker, role models.Role, passwordHash string) *models.User {
	first := f.FirstName()
	last := f.LastName()
	username := strings.ToLower(first + "." + last + fmt.Sprint(f.Number(1, 999)))
	return &models.User{
		Username:  username,
		Email:     username + "@" + f.DomainName(),
		Password:  passwordHash,
		FirstName: first,
		LastName:  last,
		Profile: &models.Profile{
			Role:     role,
			Bio:      f.Sentence(12),
			Phone:    f.Phone(),
			Language: "pl",
		},
	}
}

func makeClient(f *gofakeit.Faker) *models.Client {
	client := &models.Client{
		Email:      f.Email(),
		Phone:      f.Phone(),
		Address:    f.Street(),
		City:       f.City(),
		PostalCode: fmt.Sprintf("%02d-%03d", f.Number(0, 99), f.Number(0, 999)),
		IsActive:   f.Number(0, 9) > 0,
	}
	if f.Bool() {
		client.ClientType = models.ClientTypeIndividual
		client.Name = f.FirstName() + " " + f.LastName()
		client.PESEL = fakePESEL(f)
	} else {
		client.ClientType = models.ClientTypeCompany
		client.Name = f.Company() + " " + companySuffixes[f.Number(0, len(companySuffixes)-1)]
		client.NIP = fakeNIP(f)
		client.REGON = fakeRegon(f)
		client.KRS = fakeKRS(f)
	}
	return client
}

func makePost(f *gofakeit.Faker, seq int, authorID uint, categoryID *uint) *models.BlogPost {
	title := blogTopics[seq%len(blogTopics)]
	if seq >= len(blogTopics) {
		title = fmt.Sprintf("%s, część %d", title, seq/len(blogTopics)+1)
	}
	status := models.PostStatusPublished
	if seq%4 == 0 {
		status = models.PostStatusDraft
	}
	post := &models.BlogPost{
		Title:           title,
		Slug:            validation.Slugify(title),
		Excerpt:         f.Sentence(18),
		Content:         f.Paragraph(4, 5, 14, "\n\n"),
		Status:          status,
		AuthorID:        &authorID,
		CategoryID:      categoryID,
		ViewsCount:      uint(f.Number(0, 5000)),
		IsFeatured:      seq%7 == 0,
		AllowComments:   true,
		MetaTitle:       title,
		MetaDescription: f.Sentence(10),
	}
	if status == models.PostStatusPublished {
		published := time.Now().AddDate(0, 0, -f.Number(1, 365))
		post.PublishedAt = &published
	}
	return post
}

func makeBankruptcyCase(f *gofakeit.Faker, seq int, clientID uint, lawyerID uint) *models.BankruptcyCase {
	types := []models.BankruptcyCaseType{
		models.BankruptcyTypeConsumer,
		models.BankruptcyTypeBusiness,
		models.BankruptcyTypeLiquidation,
		models.BankruptcyTypeArrangement,
	}
	statuses := []models.BankruptcyStatus{
		models.BankruptcyStatusPreparation,
		models.BankruptcyStatusFiled,
		models.BankruptcyStatusHearing,
		models.BankruptcyStatusDeclared,
		models.BankruptcyStatusOngoing,
		models.BankruptcyStatusCompleted,
	}
	filing := time.Now().AddDate(0, -f.Number(1, 36), 0)
	debt := float64(f.Number(50_000, 5_000_000))
	assets := debt * float64(f.Number(5, 80)) / 100
	return &models.BankruptcyCase{
		CaseNumber:  caseNumber("GUp", seq, filing),
		ClientID:    clientID,
		CaseType:    types[seq%len(types)],
		Status:      statuses[seq%len(statuses)],
		Court:       courts[seq%len(courts)],
		Judge:       "SSR " + f.FirstName() + " " + f.LastName(),
		Trustee:     f.FirstName() + " " + f.LastName(),
		FilingDate:  &filing,
		DebtAmount:  &debt,
		AssetsValue: &assets,
		Description: f.Sentence(20),
		AssignedLawyerID: func() *uint {
			if lawyerID == 0 {
				return nil
			}
			return &lawyerID
		}(),
	}
}

func makeCreditor(f *gofakeit.Faker, caseID uint) *models.Creditor {
	types := []models.CreditorType{
		models.CreditorTypeBank,
		models.CreditorTypeTaxOffice,
		models.CreditorTypeZUS,
		models.CreditorTypeSupplier,
		models.CreditorTypeEmployee,
		models.CreditorTypeOther,
	}
	ctype := types[f.Number(0, len(types)-1)]
	name := f.Company() + " " + companySuffixes[f.Number(0, len(companySuffixes)-1)]
	switch ctype {
	case models.CreditorTypeTaxOffice:
		name = "Urząd Skarbowy " + f.City()
	case models.CreditorTypeZUS:
		name = "ZUS Oddział " + f.City()
	case models.CreditorTypeEmployee:
		name = f.FirstName() + " " + f.LastName()
	}
	secured := f.Number(0, 3) == 0
	creditor := &models.Creditor{
		BankruptcyCaseID: caseID,
		Name:             name,
		CreditorType:     ctype,
		ClaimAmount:      float64(f.Number(1_000, 800_000)),
		ClaimCategory:    f.Number(1, 4),
		IsSecured:        secured,
		ContactPerson:    f.FirstName() + " " + f.LastName(),
		ContactEmail:     f.Email(),
		ContactPhone:     f.Phone(),
	}
	if secured {
		creditor.SecurityDescription = "Hipoteka na nieruchomości w " + f.City()
	}
	return creditor
}

func makeRestructuringCase(f *gofakeit.Faker, seq int, clientID uint, lawyerID uint) *models.RestructuringCase {
	types := []models.ProceedingType{
		models.ProceedingArrangementApproval,
		models.ProceedingAcceleratedArrangement,
		models.ProceedingArrangement,
		models.ProceedingSanation,
	}
	statuses := []models.RestructuringStatus{
		models.RestructuringStatusPreparation,
		models.RestructuringStatusFiled,
		models.RestructuringStatusOpened,
		models.RestructuringStatusVoting,
		models.RestructuringStatusExecution,
		models.RestructuringStatusCompleted,
	}
	filing := time.Now().AddDate(0, -f.Number(1, 30), 0)
	debt := float64(f.Number(200_000, 20_000_000))
	return &models.RestructuringCase{
		CaseNumber:           caseNumber("GRz", seq, filing),
		ClientID:             clientID,
		ProceedingType:       types[seq%len(types)],
		Status:               statuses[seq%len(statuses)],
		Court:                courts[seq%len(courts)],
		JudgeCommissioner:    "SSR " + f.FirstName() + " " + f.LastName(),
		RestructuringAdvisor: f.FirstName() + " " + f.LastName(),
		FilingDate:           &filing,
		TotalDebt:            &debt,
		Description:          f.Sentence(20),
		RestructuringPlan:    f.Paragraph(2, 4, 12, "\n"),
		AssignedLawyerID: func() *uint {
			if lawyerID == 0 {
				return nil
			}
			return &lawyerID
		}(),
	}
}

func makeRestructuringCreditor(f *gofakeit.Faker, caseID uint) *models.RestructuringCreditor {
	original := float64(f.Number(10_000, 2_000_000))
	verified := original * float64(f.Number(80, 100)) / 100
	votes := []models.Vote{models.VoteFor, models.VoteAgainst, models.VoteAbstain, models.VoteNotVoted}
	return &models.RestructuringCreditor{
		RestructuringCaseID: caseID,
		Name:                f.Company() + " " + companySuffixes[f.Number(0, len(companySuffixes)-1)],
		CreditorGroup:       f.Number(1, 5),
		OriginalClaim:       original,
		VerifiedClaim:       &verified,
		VoteCast:            votes[f.Number(0, len(votes)-1)],
		IsDisputed:          f.Number(0, 5) == 0,
		ContactPerson:       f.FirstName() + " " + f.LastName(),
		ContactEmail:        f.Email(),
		ContactPhone:        f.Phone(),
	}
}
