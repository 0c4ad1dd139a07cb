package catalogue_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/waaagh-api/internal/catalogue"
	"github.com/KirkDiggler/waaagh-api/internal/entities/wh40k"
	"github.com/KirkDiggler/waaagh-api/internal/errors"
)

type CatalogueTestSuite struct {
	suite.Suite
}

func TestCatalogueTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogueTestSuite))
}

const yamlDocument = `
faction: Orks
units:
  - id: boyz
    name: Boyz
    faction: Orks
    keywords: [INFANTRY, BATTLELINE]
    unitComposition:
      minModels: 10
      maxModels: 20
      pointsPerUnit: 85
      pointsPerAdditionalModel: 8
      additionalModelMin: 10
    stats: {M: '6"', T: 5, Sv: 5+, W: 1, Ld: 7+, OC: 2}
    wargearOptions:
      - id: special-weapon
        name: Special weapon
        isGroup: true
        choices:
          - {id: slugga, name: Slugga, type: Ranged, attacks: "1", skill: 5+, strength: 4, ap: 0, damage: "1"}
          - {id: big-shoota, name: Big shoota, type: Ranged, attacks: "3", skill: 5+, strength: 5, ap: 0, damage: "1"}
        modelScope: 2
detachments:
  - id: war-horde
    name: War Horde
    detachmentRule: {name: Get Stuck In, description: Sustained hits}
    enhancements:
      - {id: follow-me-ladz, name: Follow Me Ladz, cost: 25, description: Move}
`

func (s *CatalogueTestSuite) TestDefaultCatalogue() {
	c, err := catalogue.Default()
	s.Require().NoError(err)

	s.Equal("Orks", c.Faction())
	s.NotEmpty(c.ListUnits())
	s.NotEmpty(c.ListDetachments())
	s.Equal("warboss", c.ListUnits()[0].ID)

	boyz, ok := c.FindUnit("boyz")
	s.Require().True(ok)
	s.True(boyz.HasKeyword(wh40k.KeywordBattleline))
	s.Equal(10, boyz.UnitComposition.MinModels)

	opt, ok := boyz.FindWargearOption("special-weapon")
	s.Require().True(ok)
	s.Equal(wh40k.ScopeUpTo(2), opt.ModelScope)

	ghaz, ok := c.FindUnit("ghazghkull-thraka")
	s.Require().True(ok)
	s.True(ghaz.IsEpicHero)

	horde, ok := c.FindDetachment("war-horde")
	s.Require().True(ok)
	_, ok = horde.FindEnhancement("follow-me-ladz")
	s.True(ok)
}

func (s *CatalogueTestSuite) TestLookupAbsence() {
	c, err := catalogue.Default()
	s.Require().NoError(err)

	u, ok := c.FindUnit("space-marine")
	s.False(ok)
	s.Nil(u)

	d, ok := c.FindDetachment("")
	s.False(ok)
	s.Nil(d)
}

func (s *CatalogueTestSuite) TestListIsACopy() {
	c, err := catalogue.Default()
	s.Require().NoError(err)

	units := c.ListUnits()
	units[0] = nil
	s.NotNil(c.ListUnits()[0])
}

func (s *CatalogueTestSuite) TestLoadYAML() {
	c, err := catalogue.Load(strings.NewReader(yamlDocument), catalogue.FormatYAML)
	s.Require().NoError(err)

	boyz, ok := c.FindUnit("boyz")
	s.Require().True(ok)
	s.Require().NotNil(boyz.UnitComposition.PointsPerAdditionalModel)
	s.Equal(8, *boyz.UnitComposition.PointsPerAdditionalModel)
	s.Equal(wh40k.ScopeUpTo(2), boyz.WargearOptions[0].ModelScope)
	s.Equal("6\"", boyz.Stats.M)
}

func (s *CatalogueTestSuite) TestLoadFile() {
	dir := s.T().TempDir()

	s.Run("yaml by extension", func() {
		path := filepath.Join(dir, "orks.yml")
		s.Require().NoError(os.WriteFile(path, []byte(yamlDocument), 0o600))

		c, err := catalogue.LoadFile(path)
		s.Require().NoError(err)
		s.Len(c.ListUnits(), 1)
	})

	s.Run("missing file", func() {
		_, err := catalogue.LoadFile(filepath.Join(dir, "nope.json"))
		s.True(errors.IsNotFound(err))
	})

	s.Run("unknown extension", func() {
		_, err := catalogue.LoadFile(filepath.Join(dir, "orks.toml"))
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *CatalogueTestSuite) TestLoadRejectsBadDocuments() {
	testCases := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "malformed json",
			doc:  `{"units": [`,
			want: "failed to decode catalogue",
		},
		{
			name: "duplicate unit",
			doc:  `{"units":[{"id":"a","unitComposition":{"minModels":1,"maxModels":1}},{"id":"a","unitComposition":{"minModels":1,"maxModels":1}}]}`,
			want: `duplicate unit id "a"`,
		},
		{
			name: "min above max",
			doc:  `{"units":[{"id":"a","unitComposition":{"minModels":5,"maxModels":2}}]}`,
			want: "minModels 5 exceeds maxModels 2",
		},
		{
			name: "additional points without threshold",
			doc:  `{"units":[{"id":"a","unitComposition":{"minModels":1,"maxModels":5,"pointsPerAdditionalModel":3}}]}`,
			want: "pointsPerAdditionalModel requires additionalModelMin",
		},
		{
			name: "threshold above max",
			doc:  `{"units":[{"id":"a","unitComposition":{"minModels":1,"maxModels":5,"pointsPerAdditionalModel":3,"additionalModelMin":6}}]}`,
			want: "additionalModelMin 6 exceeds maxModels 5",
		},
		{
			name: "empty choices",
			doc:  `{"units":[{"id":"a","unitComposition":{"minModels":1,"maxModels":1},"wargearOptions":[{"id":"w","choices":[]}]}]}`,
			want: `wargear option "w" has no choices`,
		},
		{
			name: "bad model scope",
			doc:  `{"units":[{"id":"a","unitComposition":{"minModels":1,"maxModels":1},"wargearOptions":[{"id":"w","modelScope":"some"}]}]}`,
			want: "failed to decode catalogue",
		},
		{
			name: "duplicate detachment",
			doc:  `{"detachments":[{"id":"d"},{"id":"d"}]}`,
			want: `duplicate detachment id "d"`,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := catalogue.Load(strings.NewReader(tc.doc), catalogue.FormatJSON)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.want)
		})
	}
}

func (s *CatalogueTestSuite) TestLoadUnknownFormat() {
	_, err := catalogue.Load(strings.NewReader("{}"), catalogue.Format("toml"))
	s.True(errors.IsInvalidArgument(err))
}
