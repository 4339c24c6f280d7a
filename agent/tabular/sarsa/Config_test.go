package sarsa

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/samuelfneumann/tabular/agent"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		config Config
		valid  bool
	}{
		{NewConfig(0.5, 0.9), true},
		{NewConfig(1, 0), true},
		{NewConfig(1e-6, 1), true},
		{Config{LearningRate: 0.1, Discount: 0.9, BonusScale: 0}, true},
		{NewConfig(0, 0.9), false},
		{NewConfig(-0.1, 0.9), false},
		{NewConfig(1.5, 0.9), false},
		{NewConfig(math.NaN(), 0.9), false},
		{NewConfig(0.5, -0.1), false},
		{NewConfig(0.5, 1.01), false},
		{NewConfig(0.5, math.NaN()), false},
		{Config{LearningRate: 0.1, Discount: 0.9, BonusScale: -1}, false},
	}

	for _, test := range tests {
		err := test.config.Validate()
		if test.valid && err != nil {
			t.Errorf("validate %+v: unexpected error %v", test.config, err)
		} else if !test.valid && err == nil {
			t.Errorf("validate %+v: expected an error", test.config)
		}

		_, err = New[int, int](test.config, []int{0, 1})
		if test.valid != (err == nil) {
			t.Errorf("new %+v: \n\twant(valid=%v)\n\thave(err=%v)",
				test.config, test.valid, err)
		}
	}
}

func TestNewEmptyActions(t *testing.T) {
	if _, err := New[int, int](NewConfig(0.5, 0.9), nil); err == nil {
		t.Error("new: expected an error for an empty legal action set")
	}
	if _, err := New[int, string](NewConfig(0.5, 0.9), []string{}); err == nil {
		t.Error("new: expected an error for an empty legal action set")
	}
}

func TestNewConfigDefaults(t *testing.T) {
	c := NewConfig(0.5, 0.9)
	if c.BonusScale != DefaultBonusScale {
		t.Errorf("newConfig: \n\twant(%v)\n\thave(%v)", DefaultBonusScale,
			c.BonusScale)
	}

	q, err := New[int, int](c, []int{0})
	if err != nil {
		t.Fatal(err)
	}
	if have := q.Config(); have != c {
		t.Errorf("config: \n\twant(%v)\n\thave(%v)", c, have)
	}
}

func TestConfigListAt(t *testing.T) {
	list := NewConfigList([]float64{0.1, 0.5}, []float64{0.9, 0.99},
		[]float64{0.5})

	if l := list.Len(); l != 4 {
		t.Fatalf("len: \n\twant(%v)\n\thave(%v)", 4, l)
	}
	if ty := list.Type; ty != agent.TabularBonusSarsa {
		t.Errorf("type: \n\twant(%v)\n\thave(%v)", agent.TabularBonusSarsa, ty)
	}

	want := []Config{
		{LearningRate: 0.1, Discount: 0.9, BonusScale: 0.5},
		{LearningRate: 0.1, Discount: 0.99, BonusScale: 0.5},
		{LearningRate: 0.5, Discount: 0.9, BonusScale: 0.5},
		{LearningRate: 0.5, Discount: 0.99, BonusScale: 0.5},
	}
	for i := range want {
		have, ok := list.At(i).(Config)
		if !ok {
			t.Fatalf("at(%d): config has wrong type %T", i, list.At(i))
		}
		if have != want[i] {
			t.Errorf("at(%d): \n\twant(%v)\n\thave(%v)", i, want[i], have)
		}
	}
}

func TestTypedConfigListJSON(t *testing.T) {
	list := NewConfigList([]float64{0.25}, []float64{0.9, 1.0},
		[]float64{0.5, 1})

	data, err := json.Marshal(list)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded agent.TypedConfigList
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if decoded.Type != agent.TabularBonusSarsa {
		t.Errorf("type: \n\twant(%v)\n\thave(%v)", agent.TabularBonusSarsa,
			decoded.Type)
	}
	if _, ok := decoded.ConfigList.(ConfigList); !ok {
		t.Fatalf("configList: decoded into wrong type %T", decoded.ConfigList)
	}
	if decoded.Len() != list.Len() {
		t.Fatalf("len: \n\twant(%v)\n\thave(%v)", list.Len(), decoded.Len())
	}
	for i := 0; i < list.Len(); i++ {
		if want, have := list.At(i), decoded.At(i); want != have {
			t.Errorf("at(%d): \n\twant(%v)\n\thave(%v)", i, want, have)
		}
	}
}

func TestTypedConfigListUnknownType(t *testing.T) {
	data := []byte(`{"Type": "NoSuchAgent", "ConfigList": {}}`)

	var decoded agent.TypedConfigList
	if err := json.Unmarshal(data, &decoded); err == nil {
		t.Error("unmarshal: expected an error for an unregistered type")
	}
}
