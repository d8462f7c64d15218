package clipboard

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeType is a descriptor whose support is fixed by the test.
type fakeType struct {
	id        Identifier
	kind      Kind
	supported bool
}

func (f fakeType) WriteOptions() (WriteOpts, bool) {
	return WriteOpts{Identifier: f.id, Kind: f.kind}, f.supported
}

func (f fakeType) ReadOptions() (ReadOpts, bool) {
	return ReadOpts{Identifier: f.id}, f.supported
}

func (fakeType) Parse(data []byte) ([]byte, bool) { return data, true }

func supported(id string) fakeType {
	return fakeType{id: Identifier(id), kind: OpaqueData, supported: true}
}

func unsupported(id string) fakeType {
	return fakeType{id: Identifier(id), kind: OpaqueData}
}

func TestTextItem(t *testing.T) {
	it := TextItem("hello")
	require.Equal(t, 1, it.Len())
	text, ok := it.Text()
	assert.True(t, ok)
	assert.Equal(t, "hello", text)
	assert.True(t, it.Formats()[0].IsText())
}

func TestSupportedPreservesOrder(t *testing.T) {
	// Every mask over n formats: the supported subset must come back in
	// declaration order.
	for n := 0; n <= 6; n++ {
		for mask := 0; mask < 1<<n; mask++ {
			var (
				formats []Format
				want    []string
			)
			for i := range n {
				id := fmt.Sprintf("type.%d", i)
				if mask&(1<<i) != 0 {
					formats = append(formats, Custom([]byte{byte(i)}, supported(id)))
					want = append(want, id)
				} else {
					formats = append(formats, Custom([]byte{byte(i)}, unsupported(id)))
				}
			}
			it := NewItem(formats...)

			var got []string
			for f := range it.Supported() {
				opts, ok := f.Info().WriteOptions()
				require.True(t, ok)
				got = append(got, string(opts.Identifier))
			}
			assert.Equal(t, want, got, "n=%d mask=%b", n, mask)
		}
	}
}

func TestSupportedRestartable(t *testing.T) {
	it := NewItem(
		Text("a"),
		Custom([]byte("x"), unsupported("no")),
		Custom([]byte("y"), supported("yes")),
	)
	first := slices.Collect(it.Supported())
	second := slices.Collect(it.Supported())
	require.Len(t, first, 2)
	assert.Equal(t, first, second)
	assert.Equal(t, 3, it.Len(), "iteration must not drop declared formats")
}

func TestSupportedStopsEarly(t *testing.T) {
	it := NewItem(Text("a"), Text("b"), Text("c"))
	var seen int
	for range it.Supported() {
		seen++
		break
	}
	assert.Equal(t, 1, seen)
}

func TestTextAlwaysSupported(t *testing.T) {
	it := NewItem(Custom(nil, unsupported("x")), Text(""))
	got := slices.Collect(it.Supported())
	require.Len(t, got, 1)
	s, ok := got[0].Text()
	assert.True(t, ok)
	assert.Equal(t, "", s)
}

func TestAddFormatLeavesReceiver(t *testing.T) {
	base := TextItem("a")
	withPDF := base.AddCustom([]byte("%PDF"), supported("com.adobe.pdf"))
	withBoth := withPDF.AddText("b")

	assert.Equal(t, 1, base.Len())
	assert.Equal(t, 2, withPDF.Len())
	assert.Equal(t, 3, withBoth.Len())

	// Branching from the same item must not alias.
	other := withPDF.AddText("c")
	s, _ := withBoth.Formats()[2].Text()
	assert.Equal(t, "b", s)
	s, _ = other.Formats()[2].Text()
	assert.Equal(t, "c", s)
}

func TestNewItemCopiesList(t *testing.T) {
	formats := []Format{Text("a")}
	it := NewItem(formats...)
	formats[0] = Text("changed")
	s, _ := it.Text()
	assert.Equal(t, "a", s)
}

func TestCustomNilData(t *testing.T) {
	f := Custom(nil, supported("x"))
	assert.NotNil(t, f.Data())
	assert.Empty(t, f.Data())
	assert.False(t, f.IsText())
	_, ok := f.Text()
	assert.False(t, ok)
}

func TestCustomWithoutDescriptor(t *testing.T) {
	f := Custom([]byte("%PDF-1.7"), nil)
	assert.False(t, f.IsText())
	assert.False(t, f.Supported())
	_, ok := f.Text()
	assert.False(t, ok)
	assert.Contains(t, f.String(), "unsupported")

	it := NewItem(f, Text(""))
	got := slices.Collect(it.Supported())
	require.Len(t, got, 1)
	assert.True(t, got[0].IsText())
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, `Text("hi")`, Text("hi").String())
	assert.Equal(t, "Custom(com.adobe.pdf (data), 3 bytes)", Custom([]byte("abc"), supported("com.adobe.pdf")).String())
	assert.Contains(t, Custom([]byte("abc"), unsupported("x")).String(), "unsupported")
	assert.Equal(t, `Item[Text("a")]`, TextItem("a").String())
}

func TestIdentifierValidate(t *testing.T) {
	assert.NoError(t, Identifier("public.png").Validate())
	assert.ErrorIs(t, Identifier("").Validate(), ErrRegister)
	assert.ErrorIs(t, Identifier("bad\x00id").Validate(), ErrRegister)
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{PlainString, OpaqueData, BinaryPropertyList} {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := ParseKind("bogus")
	assert.Error(t, err)
}
