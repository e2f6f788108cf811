package model_test

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"

	"go-portfolio/internal/model"
)

func TestDate_JSON(t *testing.T) {
	d := model.NewDate(2024, 1, 15)
	b, err := json.Marshal(d)
	if err != nil || string(b) != `"2024-01-15"` {
		t.Fatalf("marshal=%s err=%v", b, err)
	}
	var got model.Date
	if err := json.Unmarshal(b, &got); err != nil || !got.Equal(d.Time) {
		t.Fatalf("unmarshal=%v err=%v", got, err)
	}
	if err := json.Unmarshal([]byte(`"15/01/2024"`), &got); err == nil {
		t.Fatalf("expect layout error")
	}
	if err := json.Unmarshal([]byte(`""`), &got); err != nil || !got.IsZero() || got.String() != "" {
		t.Fatalf("empty date: %v %v", got, err)
	}
}

func TestDate_YAMLQuotedAndBare(t *testing.T) {
	var v struct {
		A model.Date `yaml:"a"`
		B model.Date `yaml:"b"`
	}
	if err := yaml.Unmarshal([]byte("a: 2024-01-12\nb: \"2024-01-10\"\n"), &v); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if v.A.String() != "2024-01-12" || v.B.String() != "2024-01-10" {
		t.Fatalf("got %s %s", v.A, v.B)
	}
	out, err := yaml.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back struct {
		A model.Date `yaml:"a"`
		B model.Date `yaml:"b"`
	}
	if err := yaml.Unmarshal(out, &back); err != nil || back.A.String() != "2024-01-12" || back.B.String() != "2024-01-10" {
		t.Fatalf("round trip %q: %v", out, err)
	}
	if err := yaml.Unmarshal([]byte("a: [1]\n"), &v); err == nil {
		t.Fatalf("expect scalar error")
	}
}

func TestMustDate_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expect panic")
		}
	}()
	model.MustDate("2024-13-01")
}
