package cleanup

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/crafted-tech/logonapp/installer"
	"github.com/crafted-tech/logonapp/platform"
	"github.com/crafted-tech/logonapp/platform/platformtest"
)

const packedApplication = "94327BCB79C6F3E4495BE60A548FC55A"

type SearchSuite struct {
	suite.Suite
	reg      *platformtest.Registry
	strategy *RegistrySearchStrategy
}

func (s *SearchSuite) SetupTest() {
	s.reg = platformtest.NewRegistry()
	lm := platform.LocalMachine

	s.reg.SetString(lm, uninstallKey+`\{AAA}`, "DisplayName", "WatchGuard AuthPoint Logon App")
	s.reg.SetString(lm, uninstallKey+`\{BBB}`, "DisplayName", "Some Other Tool")
	s.reg.SetString(lm, installerUserData+`\S-1-5-18\Products\X\InstallProperties`, "DisplayName", "LogonApp")
	s.reg.SetString(lm, installerProducts+`\`+packedApplication, "ProductName", "AuthPoint Agent")
	s.reg.SetString(lm, installerProducts+`\0123456789ABCDEF0123456789ABCDEF\InstallProperties`, "DisplayName", "Logon App 4")
	s.reg.SetString(lm, installerProducts+`\FFFF0000FFFF0000FFFF0000FFFF0000`, "ProductName", "Unrelated")

	s.strategy = NewRegistrySearchStrategy("search", s.reg, DefaultTargets().Search)
}

func (s *SearchSuite) TestFindOrdersStandardBeforeProducts() {
	entries := s.strategy.Find(installer.Discard())
	require.Len(s.T(), entries, 4)

	assert.Equal(s.T(), installerUserData+`\S-1-5-18\Products\X\InstallProperties`, entries[0].Path)
	assert.Equal(s.T(), EntryStandard, entries[0].Kind)
	assert.Equal(s.T(), uninstallKey+`\{AAA}`, entries[1].Path)
	assert.Equal(s.T(), EntryStandard, entries[1].Kind)

	assert.Equal(s.T(), EntryProduct, entries[2].Kind)
	assert.Equal(s.T(), "0123456789ABCDEF0123456789ABCDEF", entries[2].PackedCode)
	assert.Equal(s.T(), "Logon App 4", entries[2].DisplayName)

	assert.Equal(s.T(), packedApplication, entries[3].PackedCode)
	assert.Equal(s.T(), ApplicationCLSID, entries[3].ProductCode)
}

func (s *SearchSuite) TestExecuteDeletesMatches() {
	assert.True(s.T(), s.strategy.Execute(installer.Discard()))

	lm := platform.LocalMachine
	assert.False(s.T(), s.reg.Exists(lm, uninstallKey+`\{AAA}`))
	assert.True(s.T(), s.reg.Exists(lm, uninstallKey+`\{BBB}`))
	assert.False(s.T(), s.reg.Exists(lm, installerProducts+`\`+packedApplication))
	assert.True(s.T(), s.reg.Exists(lm, installerProducts+`\FFFF0000FFFF0000FFFF0000FFFF0000`))
	assert.True(s.T(), s.reg.Exists(lm, installerUserData+`\S-1-5-18\Products\X`))
}

func (s *SearchSuite) TestExecuteContinuesAfterDeleteFailure() {
	s.reg.DeleteErrors[`HKEY_LOCAL_MACHINE\`+uninstallKey+`\{AAA}`] = errors.New("access denied")

	log := installer.Discard()
	assert.False(s.T(), s.strategy.Execute(log))
	assert.False(s.T(), s.reg.Exists(platform.LocalMachine, installerProducts+`\`+packedApplication))
	assert.Contains(s.T(), log.Content(), "[WARNING]")
}

func (s *SearchSuite) TestNestedMatchAlreadyRemovedIsSuccess() {
	lm := platform.LocalMachine
	s.reg.SetString(lm, uninstallKey+`\{AAA}\Child`, "DisplayName", "AuthPoint child")

	entries := s.strategy.Find(installer.Discard())
	require.Len(s.T(), entries, 5)
	assert.True(s.T(), s.strategy.Execute(installer.Discard()))
}

func (s *SearchSuite) TestMatchIsCaseSensitive() {
	reg := platformtest.NewRegistry()
	reg.SetString(platform.LocalMachine, uninstallKey+`\{C}`, "DisplayName", "authpoint lowercase")

	st := NewRegistrySearchStrategy("search", reg, DefaultTargets().Search)
	assert.Empty(s.T(), st.Find(installer.Discard()))
}

func (s *SearchSuite) TestEmptyRegistry() {
	st := NewRegistrySearchStrategy("search", platformtest.NewRegistry(), DefaultTargets().Search)
	log := installer.Discard()
	assert.True(s.T(), st.Execute(log))
	assert.Contains(s.T(), log.Content(), "No AuthPoint registry entries found.")
}

func TestSearchSuite(t *testing.T) {
	suite.Run(t, new(SearchSuite))
}

func TestEntryProductCodeNilWhenNotPacked(t *testing.T) {
	reg := platformtest.NewRegistry()
	reg.SetString(platform.LocalMachine, installerProducts+`\short`, "ProductName", "WatchGuard")

	entries := NewRegistrySearchStrategy("search", reg, DefaultTargets().Search).Find(installer.Discard())
	require.Len(t, entries, 1)
	assert.Equal(t, uuid.Nil, entries[0].ProductCode)
	assert.Equal(t, "short", entries[0].PackedCode)
}
