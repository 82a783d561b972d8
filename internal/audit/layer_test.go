package audit

import "testing"

func TestClassifyLayer(t *testing.T) {
	tests := []struct {
		name string
		want Layer
	}{
		{"Primitives", LayerPrimitive},
		{"Core PRIMITIVE colors", LayerPrimitive},
		// primitive wins over mapping keywords.
		{"Primitive Map", LayerPrimitive},
		{"Brand", LayerMapping},
		{"Theme Mapping", LayerMapping},
		{"Component map", LayerMapping},
		{"Roadmap", LayerMapping},
		{"Semantic", LayerConsumer},
		{"Global", LayerConsumer},
		{"", LayerConsumer},
		{"[CIRCULAR]", LayerConsumer},
	}
	for _, tc := range tests {
		if got := ClassifyLayer(tc.name); got != tc.want {
			t.Errorf("ClassifyLayer(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestTopGroup(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"Semantic/Link", "semantic"},
		{"Global/Brand/Accent", "global"},
		{"COMPONENTS/Button/Bg", "components"},
		{"Link", ""},
		{"", ""},
		{"/Leading", ""},
		{"Link → [MISSING]", ""},
	}
	for _, tc := range tests {
		if got := TopGroup(tc.path); got != tc.want {
			t.Errorf("TopGroup(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}
