package core

import "testing"

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		expected CommandKind
	}{
		{"left", CmdLeft},
		{"RIGHT", CmdRight},
		{"up", CmdUp},
		{"down", CmdDown},
		{"rotate", CmdRotate},
		{"drop", CmdDrop},
		{" softdrop ", CmdSoftDrop},
		{"manual", CmdManual},
		{"ai", CmdAI},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := ParseCommand(tc.name, false)
			if err != nil {
				t.Fatalf("ParseCommand(%q) error: %v", tc.name, err)
			}
			if cmd.Kind != tc.expected {
				t.Errorf("ParseCommand(%q) = %v, expected %v", tc.name, cmd.Kind, tc.expected)
			}
		})
	}
}

func TestParseCommandUnknown(t *testing.T) {
	if _, err := ParseCommand("jump", false); err == nil {
		t.Error("ParseCommand(\"jump\") should fail")
	}
}

func TestParseCommandCarriesActive(t *testing.T) {
	cmd, err := ParseCommand("softdrop", true)
	if err != nil {
		t.Fatal(err)
	}
	if !cmd.Active {
		t.Error("Active flag should be preserved")
	}
	if cmd.Kind.String() != "softdrop" {
		t.Errorf("String() = %q, expected softdrop", cmd.Kind.String())
	}
}
