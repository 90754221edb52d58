package grapheme

import (
	"testing"

	"github.com/npillmayer/uax/uax11"
)

func TestCount(t *testing.T) {
	cases := []struct {
		s    string
		want int
	}{
		{"", 0},
		{"hello", 5},
		{"héllo", 5},
		{"éx", 2},
		{"🇩🇪", 1},
		{"👨‍👩‍👧‍👦", 1},
		{"a\nb", 3},
		{"\r\n", 1},
	}
	for _, c := range cases {
		if got := Count(c.s); got != c.want {
			t.Errorf("count of %q = %d, want %d", c.s, got, c.want)
		}
	}
}

func TestClusters(t *testing.T) {
	var offsets []int
	var clusters []string
	for off, cluster := range Clusters("a🇩🇪b") {
		offsets = append(offsets, off)
		clusters = append(clusters, cluster)
	}
	wantOffsets := []int{0, 1, 9}
	wantClusters := []string{"a", "🇩🇪", "b"}
	if len(offsets) != 3 {
		t.Fatalf("got %d clusters, want 3", len(offsets))
	}
	for i := range wantOffsets {
		if offsets[i] != wantOffsets[i] || clusters[i] != wantClusters[i] {
			t.Errorf("cluster %d = %q at %d, want %q at %d",
				i, clusters[i], offsets[i], wantClusters[i], wantOffsets[i])
		}
	}
}

func TestClustersKeepCombiningMarks(t *testing.T) {
	var clusters []string
	for _, cluster := range Clusters("éx") {
		clusters = append(clusters, cluster)
	}
	if len(clusters) != 2 || clusters[0] != "é" || clusters[1] != "x" {
		t.Errorf("clusters = %q", clusters)
	}
}

func TestBoundaries(t *testing.T) {
	var offsets []int
	for off := range Boundaries("a🇩🇪b") {
		offsets = append(offsets, off)
	}
	want := []int{0, 1, 9}
	if len(offsets) != len(want) {
		t.Fatalf("got %d boundaries, want %d", len(offsets), len(want))
	}
	for i := range want {
		if offsets[i] != want[i] {
			t.Errorf("boundary %d = %d, want %d", i, offsets[i], want[i])
		}
	}
}

func TestClustersOfInvalidBytes(t *testing.T) {
	var offsets []int
	var clusters []string
	for off, cluster := range Clusters("\xff\xfe") {
		offsets = append(offsets, off)
		clusters = append(clusters, cluster)
	}
	if len(clusters) != 2 {
		t.Fatalf("got %d clusters, want one per invalid byte", len(clusters))
	}
	if offsets[0] != 0 || offsets[1] != 1 {
		t.Errorf("offsets = %v", offsets)
	}
	for _, cluster := range clusters {
		if w := Width(cluster); w != 1 {
			t.Errorf("invalid byte cluster measures %d cells, want 1", w)
		}
	}
}

func TestWidth(t *testing.T) {
	cases := []struct {
		cluster string
		want    int
	}{
		{"", 0},
		{"a", 1},
		{"ä", 1},
		{"é", 1},
		{"世", 2},
		{"🇩🇪", 2},
		{"😀", 2},
		{"👨‍👩‍👧‍👦", 2},
		{"\t", DefaultTabWidth},
	}
	for _, c := range cases {
		if got := Width(c.cluster); got != c.want {
			t.Errorf("width of %q = %d, want %d", c.cluster, got, c.want)
		}
	}
}

func TestWidthTabOption(t *testing.T) {
	opts := Options{TabWidth: 8}
	if got := opts.Width("\t"); got != 8 {
		t.Errorf("tab width = %d, want 8", got)
	}
	if got := (Options{}).Width("\t"); got != DefaultTabWidth {
		t.Errorf("default tab width = %d, want %d", got, DefaultTabWidth)
	}
}

func TestStringWidth(t *testing.T) {
	if got := StringWidth("aä世🇩🇪"); got != 6 {
		t.Errorf("string width = %d, want 6", got)
	}
	if got := StringWidth("a\tb"); got != 2+DefaultTabWidth {
		t.Errorf("string width with tab = %d, want %d", got, 2+DefaultTabWidth)
	}
}

func TestWidthUnderLatinContext(t *testing.T) {
	opts := Options{Context: uax11.LatinContext}
	if got := opts.Width("世"); got != 2 {
		t.Errorf("wide character measures %d cells, want 2", got)
	}
	// U+00B1 is East Asian ambiguous; a Latin context resolves it narrow.
	if got := opts.Width("±"); got != 1 {
		t.Errorf("ambiguous character measures %d cells, want 1", got)
	}
	if got := opts.Width("a"); got != 1 {
		t.Errorf("narrow character measures %d cells, want 1", got)
	}
}

func TestSpans(t *testing.T) {
	var spans []Span
	for span := range (Options{}).Spans("a\t世") {
		spans = append(spans, span)
	}
	want := []Span{
		{Start: 0, Cluster: "a", Width: 1},
		{Start: 1, Cluster: "\t", Width: DefaultTabWidth},
		{Start: 2, Cluster: "世", Width: 2},
	}
	if len(spans) != len(want) {
		t.Fatalf("got %d spans, want %d", len(spans), len(want))
	}
	for i := range want {
		if spans[i] != want[i] {
			t.Errorf("span %d = %+v, want %+v", i, spans[i], want[i])
		}
	}
}
