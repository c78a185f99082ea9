package adrci

import "testing"

func TestParseBase(t *testing.T) {
	cases := []struct {
		name   string
		output string
		want   string
	}{
		{
			name:   "is form",
			output: "\nADR base is \"/u01/app/oracle\"\n",
			want:   "/u01/app/oracle",
		},
		{
			name:   "equals form",
			output: "ADR base = \"/opt/oracle\"\n",
			want:   "/opt/oracle",
		},
		{
			name:   "indented",
			output: "   ADR base is \"/u01/app/grid\"   \n",
			want:   "/u01/app/grid",
		},
		{
			name:   "no base line",
			output: "DIA-48447: The input path does not contain any ADR homes\n",
			want:   "",
		},
		{
			name:   "unquoted",
			output: "ADR base is /u01/app/oracle\n",
			want:   "",
		},
		{
			name:   "empty",
			output: "",
			want:   "",
		},
	}

	for _, tc := range cases {
		if got := ParseBase(tc.output); got != tc.want {
			t.Errorf("%s: ParseBase = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestParseHomes(t *testing.T) {
	output := "ADR Homes: \n" +
		"diag/rdbms/orcl/orcl1\n" +
		"\n" +
		"diag/tnslsnr/db01/listener\n" +
		"diag/rdbms/orcl/orcl1\n"

	got := ParseHomes(output)
	want := []string{
		"diag/rdbms/orcl/orcl1",
		"diag/tnslsnr/db01/listener",
		"diag/rdbms/orcl/orcl1",
	}
	if len(got) != len(want) {
		t.Fatalf("ParseHomes = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ParseHomes = %v, want %v", got, want)
		}
	}
}

func TestParseHomesSkipsNotices(t *testing.T) {
	if got := ParseHomes("No ADR homes are set\n"); len(got) != 0 {
		t.Fatalf("notice line should be dropped, got %v", got)
	}
	if got := ParseHomes(""); len(got) != 0 {
		t.Fatalf("empty output should yield nothing, got %v", got)
	}
}

func TestFirstLine(t *testing.T) {
	if got := firstLine([]byte("\nDIA-48494: ADR home is not set\nsecond\n")); got != "DIA-48494: ADR home is not set" {
		t.Fatalf("firstLine = %q", got)
	}
	if got := firstLine(nil); got != "" {
		t.Fatalf("firstLine(nil) = %q", got)
	}
}
