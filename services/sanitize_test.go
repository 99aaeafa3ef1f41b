package services

import (
	"reflect"
	"testing"
)

func TestSanitizeDocument(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]interface{}
		want map[string]interface{}
	}{
		{
			name: "strips angle brackets",
			in:   map[string]interface{}{"playerName": "<script>alert(1)</script>Alex"},
			want: map[string]interface{}{"playerName": "scriptalert(1)/scriptAlex"},
		},
		{
			name: "strips javascript uris and handlers",
			in:   map[string]interface{}{"bio": "JavaScript:void(0) onclick=steal()"},
			want: map[string]interface{}{"bio": "void(0) steal()"},
		},
		{
			name: "recurses through nested maps and slices",
			in: map[string]interface{}{
				"teams": []interface{}{
					map[string]interface{}{"teamName": "<b>Bears</b>", "present": []interface{}{"A<x>"}},
				},
			},
			want: map[string]interface{}{
				"teams": []interface{}{
					map[string]interface{}{"teamName": "bBears/b", "present": []interface{}{"Ax"}},
				},
			},
		},
		{
			name: "leaves non-string leaves alone",
			in:   map[string]interface{}{"period": 3, "breakaway": true, "note": nil},
			want: map[string]interface{}{"period": 3, "breakaway": true, "note": nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeDocument(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SanitizeDocument() = %#v, want %#v", got, tt.want)
			}
		})
	}
}
