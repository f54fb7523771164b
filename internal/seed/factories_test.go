package seed

import (
	"testing"
	"time"

	"kapm/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaseNumberFormat(t *testing.T) {
	t.Parallel()
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.Regexp(t, `^[IVX]+ GUp \d+/24$`, caseNumber("GUp", 3, date))
	assert.Regexp(t, `^[IVX]+ GRz \d+/24$`, caseNumber("GRz", 17, date))
}

func TestRegistryNumberLengths(t *testing.T) {
	t.Parallel()
	f := gofakeit.New(1)
	assert.Len(t, fakePESEL(f), 11)
	assert.Len(t, fakeNIP(f), 10)
	assert.Len(t, fakeRegon(f), 9)
	assert.Len(t, fakeKRS(f), 10)
}

func TestMakeClient_RegistryIdentifiersMatchType(t *testing.T) {
	t.Parallel()
	f := gofakeit.New(3)
	for i := 0; i < 50; i++ {
		client := makeClient(f)
		switch client.ClientType {
		case models.ClientTypeIndividual:
			assert.NotEmpty(t, client.PESEL)
			assert.Empty(t, client.KRS)
			assert.Empty(t, client.REGON)
		case models.ClientTypeCompany:
			assert.Empty(t, client.PESEL)
			assert.NotEmpty(t, client.NIP)
		default:
			t.Fatalf("unexpected client type %q", client.ClientType)
		}
	}
}

func TestMakePost_PublishedGetsTimestamp(t *testing.T) {
	t.Parallel()
	f := gofakeit.New(5)
	authorID := uint(1)
	for i := 0; i < 12; i++ {
		post := makePost(f, i, authorID, nil)
		if post.Status == models.PostStatusPublished {
			require.NotNil(t, post.PublishedAt)
			assert.True(t, post.PublishedAt.Before(time.Now()))
		} else {
			assert.Nil(t, post.PublishedAt)
		}
		assert.NotEmpty(t, post.Slug)
	}
}

func TestMakeCreditor_CategoryInRange(t *testing.T) {
	t.Parallel()
	f := gofakeit.New(9)
	for i := 0; i < 30; i++ {
		creditor := makeCreditor(f, 1)
		assert.True(t, models.ValidClaimCategory(creditor.ClaimCategory))
		assert.True(t, creditor.CreditorType.Valid())
	}
}
