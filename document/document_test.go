package document_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/maxslog/document"
)

func sampleDoc() *document.KernelNotifications {
	return &document.KernelNotifications{
		AppID:      "gearbox",
		AppVersion: "1.2.0",
		Notifications: []document.Notification{
			{CompID: 5, Routine: "tr06", Type: "INFO", Message: "TR06 plugin"},
			{
				CompID: 5, Routine: "tr06", Type: "DEBUG_ERROR",
				Message: "elastic_modulus is required to perform the calculation but is missing.",
				Data: &document.Data{Items: []document.Item{
					{AttrID: "elastic_modulus", CompID: 5, Value: document.Float(math.NaN())},
					{AttrID: "face_width", CompID: 5, Value: document.Float(math.Inf(1))},
					{AttrID: "helix_angle", CompID: 5, Value: 12.5},
				}},
			},
			{Type: "WARNING", Message: "no routine, no component"},
		},
	}
}

func TestEncode_LayoutAndOmissions(t *testing.T) {
	out, err := document.Marshal(sampleDoc())
	require.NoError(t, err)
	s := string(out)

	assert.True(t, strings.HasPrefix(s, document.Header))
	assert.Contains(t, s, `<kernelNotifications appId="gearbox" appVersion="1.2.0">`)
	assert.Contains(t, s, `    <notification compId="5" routine="tr06" type="INFO">`)
	assert.Contains(t, s, `        <message>TR06 plugin</message>`)
	assert.Contains(t, s, `<item attrId="elastic_modulus" compId="5" value="NaN"></item>`)
	assert.Contains(t, s, `value="INF"`)
	assert.Contains(t, s, `value="12.5"`)
	assert.Contains(t, s, `<notification type="WARNING">`)

	// the first notification has no items, so no <data> before the second one starts
	first := s[strings.Index(s, "TR06 plugin"):strings.Index(s, "DEBUG_ERROR")]
	assert.NotContains(t, first, "<data>")
	assert.Less(t, strings.Index(s, "<message>elastic_modulus"), strings.Index(s, "<data>"))
}

func TestEncode_AppInfoOmittedWhenUnset(t *testing.T) {
	out, err := document.Marshal(&document.KernelNotifications{})
	require.NoError(t, err)
	assert.NotContains(t, string(out), "appId")
	assert.NotContains(t, string(out), "appVersion")
	assert.Contains(t, string(out), "<kernelNotifications>")
}

func TestXML_RoundTrip(t *testing.T) {
	in := sampleDoc()
	out, err := document.Marshal(in)
	require.NoError(t, err)

	back, err := document.Unmarshal(out)
	require.NoError(t, err)
	require.Equal(t, 3, back.Len())
	assert.Equal(t, in.AppID, back.AppID)
	assert.Equal(t, in.AppVersion, back.AppVersion)
	for i := range in.Notifications {
		want, got := in.Notifications[i], back.Notifications[i]
		assert.Equal(t, want.CompID, got.CompID)
		assert.Equal(t, want.Routine, got.Routine)
		assert.Equal(t, want.Type, got.Type)
		assert.Equal(t, want.Message, got.Message)
	}
	items := back.Notifications[1].Data.Items
	require.Len(t, items, 3)
	assert.True(t, math.IsNaN(float64(items[0].Value)))
	assert.True(t, math.IsInf(float64(items[1].Value), 1))
	assert.Equal(t, 12.5, float64(items[2].Value))
	assert.Nil(t, back.Notifications[0].Data)
}

func TestDecode_RejectsForeignRoot(t *testing.T) {
	_, err := document.Unmarshal([]byte(`<log><notification type="INFO"/></log>`))
	require.Error(t, err)
}

func TestParseFloat_AcceptsForeignSpellings(t *testing.T) {
	for _, s := range []string{"Infinity", "+Inf", "INF"} {
		v, err := document.ParseFloat(s)
		require.NoError(t, err, s)
		assert.True(t, math.IsInf(v, 1), s)
	}
	v, err := document.ParseFloat("-Infinity")
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, -1))

	_, err = document.ParseFloat("abc")
	require.Error(t, err)
}

func TestJSON_NonFiniteAsStrings(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, document.EncodeJSON(&buf, sampleDoc()))
	assert.Contains(t, buf.String(), `"value": "NaN"`)
	assert.Contains(t, buf.String(), `"value": "INF"`)
	assert.Contains(t, buf.String(), `"value": 12.5`)

	back, err := document.DecodeJSON(&buf)
	require.NoError(t, err)
	require.Equal(t, 3, back.Len())
	assert.True(t, math.IsNaN(float64(back.Notifications[1].Data.Items[0].Value)))
}

func TestJSON_EmptyDocumentHasArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, document.EncodeJSON(&buf, &document.KernelNotifications{}))
	assert.Contains(t, buf.String(), `"notifications": []`)
}

func TestYAML_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, document.EncodeYAML(&buf, sampleDoc()))
	assert.Contains(t, buf.String(), ".nan")

	back, err := document.DecodeYAML(&buf)
	require.NoError(t, err)
	require.Equal(t, 3, back.Len())
	assert.Equal(t, "DEBUG_ERROR", back.Notifications[1].Type)
	assert.True(t, math.IsInf(float64(back.Notifications[1].Data.Items[1].Value), 1))
}

func TestParseFormat(t *testing.T) {
	f, err := document.ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, document.FormatYAML, f)

	_, err = document.ParseFormat("csv")
	require.Error(t, err)
}
