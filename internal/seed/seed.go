// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"time"

	"kapm/internal/models"
	"kapm/internal/validation"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configure a seeding run.
type Options struct {
	Users   int
	Clients int
	Posts   int
	Cases   int
	Seed    int64
}

// Seeder populates the database with realistic development data.
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a Seeder bound to the given database.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// ClearAll removes all seeded data. Child tables go first so foreign
// keys never dangle mid-run.
func (s *Seeder) ClearAll() error {
	tables := []interface{}{
		&models.ArrangementPayment{},
		&models.ArrangementProposal{},
		&models.RestructuringCreditor{},
		&models.RestructuringEvent{},
		&models.RestructuringCase{},
		&models.ConsumerBankruptcyDetails{},
		&models.Creditor{},
		&models.BankruptcyEvent{},
		&models.BankruptcyCase{},
		&models.Client{},
		&models.Comment{},
		&models.MediaFile{},
		&models.BlogPost{},
		&models.Tag{},
		&models.Category{},
		&models.Page{},
		&models.Profile{},
		&models.User{},
	}
	for _, table := range tables {
		if err := s.db.Unscoped().Where("1 = 1").Delete(table).Error; err != nil {
			return fmt.Errorf("clearing %T: %w", table, err)
		}
	}
	return nil
}

// Run seeds users, CMS content, clients and case records. All accounts
// share the password "kapm-dev".
func (s *Seeder) Run(opts Options) error {
	if opts.Users < 4 {
		opts.Users = 4
	}
	if opts.Clients < 1 {
		opts.Clients = 10
	}
	if opts.Posts < 1 {
		opts.Posts = 20
	}
	if opts.Cases < 1 {
		opts.Cases = 8
	}

	f := gofakeit.New(opts.Seed)

	hash, err := bcrypt.GenerateFromPassword([]byte("kapm-dev"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users, err := s.seedUsers(f, opts.Users, string(hash))
	if err != nil {
		return err
	}
	staff := usersWithRole(users, models.RoleAdmin, models.RoleEditor, models.RoleAuthor)
	log.Printf("seeded %d users", len(users))

	categories, err := s.seedCategories()
	if err != nil {
		return err
	}
	tags, err := s.seedTags()
	if err != nil {
		return err
	}
	if err := s.seedPages(); err != nil {
		return err
	}

	if err := s.seedPosts(f, opts.Posts, staff, categories, tags); err != nil {
		return err
	}
	log.Printf("seeded %d posts", opts.Posts)

	clients, err := s.seedClients(f, opts.Clients)
	if err != nil {
		return err
	}
	if err := s.seedCases(f, opts.Cases, clients, staff); err != nil {
		return err
	}
	log.Printf("seeded %d clients, %d case pairs", len(clients), opts.Cases)

	return nil
}

func (s *Seeder) seedUsers(f *gofakeit.Faker, count int, hash string) ([]*models.User, error) {
	roles := []models.Role{models.RoleAdmin, models.RoleEditor, models.RoleAuthor, models.RoleViewer}
	users := make([]*models.User, 0, count)
	for i := 0; i < count; i++ {
		role := roles[len(roles)-1]
		if i < len(roles) {
			role = roles[i]
		}
		user := makeUser(f, role, hash)
		if i == 0 {
			user.Username = "admin"
			user.Email = "admin@kapm.local"
			user.IsSuperuser = true
		}
		if err := s.db.Create(user).Error; err != nil {
			return nil, fmt.Errorf("seeding user %q: %w", user.Username, err)
		}
		users = append(users, user)
	}
	return users, nil
}

func usersWithRole(users []*models.User, roles ...models.Role) []*models.User {
	var out []*models.User
	for _, u := range users {
		for _, r := range roles {
			if u.Role() == r {
				out = append(out, u)
				break
			}
		}
	}
	return out
}

func (s *Seeder) seedCategories() ([]*models.Category, error) {
	names := []string{
		"Upadłość konsumencka",
		"Upadłość przedsiębiorcy",
		"Restrukturyzacja",
		"Orzecznictwo",
		"Aktualności",
	}
	categories := make([]*models.Category, 0, len(names))
	for _, name := range names {
		category := &models.Category{
			Name:     name,
			Slug:     validation.Slugify(name),
			IsActive: true,
		}
		if err := s.db.Create(category).Error; err != nil {
			return nil, fmt.Errorf("seeding category %q: %w", name, err)
		}
		categories = append(categories, category)
	}
	return categories, nil
}

func (s *Seeder) seedTags() ([]*models.Tag, error) {
	names := []string{"pre-pack", "syndyk", "układ", "sanacja", "wierzyciele", "KRZ", "plan spłaty"}
	tags := make([]*models.Tag, 0, len(names))
	for _, name := range names {
		tag := &models.Tag{Name: name, Slug: validation.Slugify(name)}
		if err := s.db.Create(tag).Error; err != nil {
			return nil, fmt.Errorf("seeding tag %q: %w", name, err)
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func (s *Seeder) seedPages() error {
	pages := []*models.Page{
		{Title: "O kancelarii", Content: "Kancelaria specjalizuje się w prawie upadłościowym i restrukturyzacyjnym.", IsPublished: true, ShowInMenu: true, MenuOrder: 1},
		{Title: "Zespół", Content: "Nasi prawnicy i doradcy restrukturyzacyjni.", IsPublished: true, ShowInMenu: true, MenuOrder: 2},
		{Title: "Kontakt", Content: "Formularz kontaktowy i dane adresowe.", IsPublished: true, ShowInMenu: true, MenuOrder: 3},
		{Title: "Polityka prywatności", Content: "Zasady przetwarzania danych osobowych.", IsPublished: true},
	}
	for _, page := range pages {
		page.Slug = validation.Slugify(page.Title)
		page.Template = models.PageTemplateDefault
		page.MetaTitle = page.Title
		if err := s.db.Create(page).Error; err != nil {
			return fmt.Errorf("seeding page %q: %w", page.Title, err)
		}
	}
	return nil
}

func (s *Seeder) seedPosts(f *gofakeit.Faker, count int, staff []*models.User, categories []*models.Category, tags []*models.Tag) error {
	if len(staff) == 0 {
		return fmt.Errorf("no staff users to author posts")
	}
	for i := 0; i < count; i++ {
		author := staff[i%len(staff)]
		var categoryID *uint
		if len(categories) > 0 {
			categoryID = &categories[i%len(categories)].ID
		}
		post := makePost(f, i, author.ID, categoryID)
		if len(tags) > 0 {
			post.Tags = []models.Tag{*tags[i%len(tags)], *tags[(i+2)%len(tags)]}
		}
		if err := s.db.Create(post).Error; err != nil {
			return fmt.Errorf("seeding post %q: %w", post.Title, err)
		}
		if post.Status == models.PostStatusPublished {
			if err := s.seedComments(f, post.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Seeder) seedComments(f *gofakeit.Faker, postID uint) error {
	for i, n := 0, f.Number(0, 4); i < n; i++ {
		comment := &models.Comment{
			PostID:      postID,
			AuthorName:  f.FirstName() + " " + f.LastName(),
			AuthorEmail: f.Email(),
			Content:     f.Sentence(14),
			IsApproved:  f.Number(0, 3) > 0,
		}
		if err := s.db.Create(comment).Error; err != nil {
			return fmt.Errorf("seeding comment: %w", err)
		}
	}
	return nil
}

func (s *Seeder) seedClients(f *gofakeit.Faker, count int) ([]*models.Client, error) {
	clients := make([]*models.Client, 0, count)
	for i := 0; i < count; i++ {
		client := makeClient(f)
		if err := s.db.Create(client).Error; err != nil {
			return nil, fmt.Errorf("seeding client %q: %w", client.Name, err)
		}
		clients = append(clients, client)
	}
	return clients, nil
}

// seedCases creates one bankruptcy and one restructuring case per
// iteration, each with creditors, a timeline, and for restructuring an
// arrangement proposal with a payment schedule.
func (s *Seeder) seedCases(f *gofakeit.Faker, count int, clients []*models.Client, staff []*models.User) error {
	var lawyerID uint
	if len(staff) > 0 {
		lawyerID = staff[0].ID
	}

	for i := 0; i < count; i++ {
		client := clients[i%len(clients)]

		bc := makeBankruptcyCase(f, i+1, client.ID, lawyerID)
		if err := s.db.Create(bc).Error; err != nil {
			return fmt.Errorf("seeding bankruptcy case %q: %w", bc.CaseNumber, err)
		}
		for j, n := 0, f.Number(2, 6); j < n; j++ {
			if err := s.db.Create(makeCreditor(f, bc.ID)).Error; err != nil {
				return fmt.Errorf("seeding creditor: %w", err)
			}
		}
		if err := s.db.Create(&models.BankruptcyEvent{
			BankruptcyCaseID: bc.ID,
			EventType:        models.BankruptcyEventFiling,
			EventDate:        *bc.FilingDate,
			Title:            "Złożenie wniosku o ogłoszenie upadłości",
			Description:      "Wniosek złożony w " + bc.Court,
			IsPublic:         true,
		}).Error; err != nil {
			return fmt.Errorf("seeding bankruptcy event: %w", err)
		}
		if bc.CaseType == models.BankruptcyTypeConsumer {
			income := float64(f.Number(2_500, 12_000))
			if err := s.db.Create(&models.ConsumerBankruptcyDetails{
				BankruptcyCaseID: bc.ID,
				MonthlyIncome:    income,
				FamilySize:       f.Number(1, 5),
				HasRealEstate:    f.Bool(),
				ReasonForDebt:    "Utrata źródła dochodu i narastające zobowiązania kredytowe",
			}).Error; err != nil {
				return fmt.Errorf("seeding consumer details: %w", err)
			}
		}

		rc := makeRestructuringCase(f, i+1, client.ID, lawyerID)
		if err := s.db.Create(rc).Error; err != nil {
			return fmt.Errorf("seeding restructuring case %q: %w", rc.CaseNumber, err)
		}
		for j, n := 0, f.Number(2, 6); j < n; j++ {
			if err := s.db.Create(makeRestructuringCreditor(f, rc.ID)).Error; err != nil {
				return fmt.Errorf("seeding restructuring creditor: %w", err)
			}
		}
		if err := s.db.Create(&models.RestructuringEvent{
			RestructuringCaseID: rc.ID,
			EventType:           models.RestructuringEventFiling,
			EventDate:           *rc.FilingDate,
			Title:               "Złożenie wniosku restrukturyzacyjnego",
			Description:         "Wniosek złożony w " + rc.Court,
			IsPublic:            true,
			IsMandatory:         true,
		}).Error; err != nil {
			return fmt.Errorf("seeding restructuring event: %w", err)
		}

		installments := f.Number(6, 36)
		proposal := &models.ArrangementProposal{
			RestructuringCaseID: rc.ID,
			Version:             1,
			ReductionPercentage: float64(f.Number(10, 60)),
			PaymentInstallments: installments,
			PaymentPeriodMonths: installments,
			InterestRate:        float64(f.Number(0, 6)),
			CreditorGroups:      "wszystkie grupy wierzycieli",
			IsActive:            true,
		}
		if err := s.db.Create(proposal).Error; err != nil {
			return fmt.Errorf("seeding proposal: %w", err)
		}
		amount := *rc.TotalDebt * (100 - proposal.ReductionPercentage) / 100 / float64(installments)
		for j := 1; j <= installments; j++ {
			payment := &models.ArrangementPayment{
				RestructuringCaseID: rc.ID,
				InstallmentNumber:   j,
				DueDate:             time.Now().AddDate(0, j, 0),
				Amount:              amount,
			}
			if err := s.db.Create(payment).Error; err != nil {
				return fmt.Errorf("seeding payment: %w", err)
			}
		}
	}
	return nil
}
