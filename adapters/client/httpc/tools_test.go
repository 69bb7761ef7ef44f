package httpc

import (
	"reflect"
	"strconv"
	"testing"

	"github.com/supernova0730/mbsms/mbTools"
)

func TestObject2Form(t *testing.T) {
	type embStruct struct {
		EF1 int `form:"ef1"`
	}

	tests := []struct {
		obj  any
		want Form
	}{
		{
			obj: struct {
				embStruct
				F1 int       `form:"f1"`
				F2 int64     `form:"f2"`
				F3 float64   `form:"f3"`
				F4 *int      `form:"f4"`
				F5 []int     `form:"f5"`
				F6 []string  `form:"f6,comma"`
				F7 *[]string `form:"f7"`
				F8 bool      `form:"f8"`
				F9 *bool     `form:"f9"`
				FA string    `form:"fa,omitempty"`
				FB string    `form:"fb"`
				FC string    `form:"-"`
			}{
				embStruct: embStruct{EF1: 77},
				F1:        1,
				F2:        -2,
				F3:        3.14,
				F4:        mbTools.NewPtr(7),
				F5:        []int{1, 2},
				F6:        []string{"311", "312"},
				F8:        false,
				F9:        mbTools.NewPtr(true),
				FC:        "skipped",
			},
			want: Form{
				{"ef1", "77"},
				{"f1", "1"},
				{"f2", "-2"},
				{"f3", "3.14"},
				{"f4", "7"},
				{"f5", "1"},
				{"f5", "2"},
				{"f6", "311,312"},
				{"f8", "false"},
				{"f9", "true"},
				{"fb", ""},
			},
		},
	}
	for ttI, tt := range tests {
		t.Run(strconv.Itoa(ttI+1), func(t *testing.T) {
			if got := Object2Form(tt.obj); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Object2Form() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormEncode(t *testing.T) {
	f := Form{}
	f.Add("tariff", "150")
	f.Add("shortcode", "1008")
	f.Add("keyword", "MessageBird")
	f.Add("body", "Hello world & more")
	f.Set("tariff", "200")

	want := "tariff=200&shortcode=1008&keyword=MessageBird&body=Hello+world+%26+more"
	if got := f.Encode(); got != want {
		t.Errorf("Encode() = %v, want %v", got, want)
	}

	if v, ok := f.Get("keyword"); !ok || v != "MessageBird" {
		t.Errorf("Get() = %v, %v", v, ok)
	}
	if f.Has("dlr_url") {
		t.Errorf("Has() = true for absent key")
	}
	if got := f.Values().Get("shortcode"); got != "1008" {
		t.Errorf("Values() shortcode = %v", got)
	}
}

func TestFormMasked(t *testing.T) {
	f := Form{{"username", "user"}, {"password", "secret"}}

	masked := f.Masked(SecretFormFields...)

	if v, _ := masked.Get("password"); v != "***" {
		t.Errorf("Masked() password = %v", v)
	}
	if v, _ := f.Get("password"); v != "secret" {
		t.Errorf("Masked() changed the original form")
	}
}

func TestGetMergedWith(t *testing.T) {
	base := OptionsSt{
		BaseUrl:   "https://api.messagebird.com/",
		Method:    "POST",
		Timeout:   30,
		LogPrefix: "mb: ",
	}

	got := base.GetMergedWith(OptionsSt{
		Path:      "api/sms",
		LogPrefix: "-",
		CloseConn: true,
	})

	if got.BaseUrl != base.BaseUrl || got.Method != "POST" || got.Path != "api/sms" {
		t.Errorf("GetMergedWith() = %+v", got)
	}
	if got.LogPrefix != "" {
		t.Errorf("GetMergedWith() LogPrefix = %q, want empty", got.LogPrefix)
	}
	if got.Timeout != 30 || !got.CloseConn {
		t.Errorf("GetMergedWith() Timeout/CloseConn = %v/%v", got.Timeout, got.CloseConn)
	}

	got = base.GetMergedWith(OptionsSt{Timeout: -1})
	if got.Timeout != 0 {
		t.Errorf("GetMergedWith() negative timeout = %v, want 0", got.Timeout)
	}
}
