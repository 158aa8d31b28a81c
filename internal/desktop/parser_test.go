package desktop

import (
	"testing"

	"github.com/stretchr/testify/require"

	"quicklaunch/internal/domain"
)

func TestParseApplication(t *testing.T) {
	content := `[Desktop Entry]
Type=Application
Name=Firefox
Comment=Browse the web
Exec=/usr/bin/firefox %u
Keywords=web;browser;internet;
Categories=Network;WebBrowser;
Terminal=false
`

	desc, err := Parse(content)
	require.NoError(t, err)
	require.Equal(t, domain.KindApplication, desc.Kind)
	require.Equal(t, "Firefox", desc.Name)
	require.Equal(t, "/usr/bin/firefox %u", desc.Exec)
	require.Equal(t, []string{"web", "browser", "internet"}, desc.Keywords)
	require.Equal(t, []string{"Network", "WebBrowser"}, desc.Categories)
	require.False(t, desc.Hidden)
	require.False(t, desc.Terminal)
}

func TestParseIgnoresActionGroupsAndLocalizedKeys(t *testing.T) {
	content := `[Desktop Entry]
Type=Application
Name=Files
Name[de]=Dateien
Exec=nautilus

[Desktop Action new-window]
Name=New Window
Exec=nautilus --new-window
`

	desc, err := Parse(content)
	require.NoError(t, err)
	require.Equal(t, "Files", desc.Name)
	require.Equal(t, "nautilus", desc.Exec)
}

func TestParseHiddenFlags(t *testing.T) {
	for _, key := range []string{"NoDisplay", "Hidden"} {
		desc, err := Parse("[Desktop Entry]\nType=Application\nName=X\nExec=x\n" + key + "=true\n")
		require.NoError(t, err)
		require.True(t, desc.Hidden, key)
	}
}

func TestParseNonApplicationKinds(t *testing.T) {
	desc, err := Parse("[Desktop Entry]\nType=Link\nName=Homepage\nURL=https://example.com\n")
	require.NoError(t, err)
	require.Equal(t, domain.KindLink, desc.Kind)

	desc, err = Parse("[Desktop Entry]\nType=Widget\nName=Odd\n")
	require.NoError(t, err)
	require.Equal(t, domain.KindUnknown, desc.Kind)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("Name=No group header\n")
	require.Error(t, err)

	_, err = Parse("[Desktop Entry]\nType=Application\nExec=x\n")
	require.Error(t, err, "missing Name should fail")

	_, err = Parse("[Desktop Entry]\nthis line has no equals sign\n")
	require.Error(t, err)
}

func TestSplitListEscapedSeparator(t *testing.T) {
	items := splitList(`foo\;bar;baz;`)
	require.Equal(t, []string{"foo;bar", "baz"}, items)
}

func TestSplitListEmpty(t *testing.T) {
	require.Empty(t, splitList(""))
	require.Empty(t, splitList(";"))
}
