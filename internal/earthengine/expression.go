package earthengine

import (
	"github.com/dhenenjay/orbital-insights/constants"
)

// Expression is the serialized processing graph the REST API evaluates.
// Values holds named nodes; Result names the root.
type Expression struct {
	Result string                `json:"result"`
	Values map[string]*ValueNode `json:"values"`
}

// ValueNode is one node of the graph; exactly one field is set.
type ValueNode struct {
	ConstantValue           any                 `json:"constantValue,omitempty"`
	ArgumentReference       string              `json:"argumentReference,omitempty"`
	ValueReference          string              `json:"valueReference,omitempty"`
	FunctionInvocationValue *FunctionInvocation `json:"functionInvocationValue,omitempty"`
	FunctionDefinitionValue *FunctionDefinition `json:"functionDefinitionValue,omitempty"`
}

type FunctionInvocation struct {
	FunctionName string                `json:"functionName"`
	Arguments    map[string]*ValueNode `json:"arguments"`
}

// FunctionDefinition is a lambda; Body references a key in Expression.Values.
type FunctionDefinition struct {
	ArgumentNames []string `json:"argumentNames"`
	Body          string   `json:"body"`
}

type args = map[string]*ValueNode

func constant(v any) *ValueNode {
	return &ValueNode{ConstantValue: v}
}

func argRef(name string) *ValueNode {
	return &ValueNode{ArgumentReference: name}
}

func valueRef(key string) *ValueNode {
	return &ValueNode{ValueReference: key}
}

func invoke(fn string, a args) *ValueNode {
	return &ValueNode{FunctionInvocationValue: &FunctionInvocation{
		FunctionName: fn,
		Arguments:    a,
	}}
}

// CompositeParams describe the cloud-masked median composite to build.
type CompositeParams struct {
	Collection string
	StartDate  string // YYYY-MM-DD
	EndDate    string // YYYY-MM-DD, exclusive
	Region     Polygon
	Bands      []string
}

// CompositeExpression serializes the full pipeline: load collection, filter
// by date and bounds, map the cloud mask, median-composite the selected
// bands, then scale back to int16 range for export.
func CompositeExpression(p CompositeParams) *Expression {
	if p.Collection == "" {
		p.Collection = constants.Sentinel2Collection
	}
	if len(p.Bands) == 0 {
		p.Bands = constants.CompositeBands
	}

	// The region geometry is shared by the bounds filter and the final clip,
	// so it lives in Values and is referenced from both sites.
	geometry := invoke("GeometryConstructors.Polygon", args{
		"coordinates": constant(p.Region.coordinates()),
		"crs":         invoke("Projection", args{"crs": constant(constants.ExportCRS)}),
	})

	collection := invoke("ImageCollection.load", args{
		"id": constant(p.Collection),
	})
	filtered := invoke("Collection.filter", args{
		"collection": invoke("Collection.filter", args{
			"collection": collection,
			"filter": invoke("Filter.dateRangeContains", args{
				"leftField": constant("system:time_start"),
				"rightValue": invoke("DateRange", args{
					"start": constant(p.StartDate),
					"end":   constant(p.EndDate),
				}),
			}),
		}),
		"filter": invoke("Filter.intersects", args{
			"leftField":  constant(".all"),
			"rightValue": valueRef("region"),
		}),
	})

	masked := invoke("Collection.map", args{
		"collection": filtered,
		"baseAlgorithm": &ValueNode{FunctionDefinitionValue: &FunctionDefinition{
			ArgumentNames: []string{"image"},
			Body:          "mask",
		}},
	})

	bandSelectors := make([]any, len(p.Bands))
	for i, b := range p.Bands {
		bandSelectors[i] = b
	}
	median := invoke("Image.select", args{
		"input": invoke("reduce.median", args{
			"collection": masked,
		}),
		"bandSelectors": constant(bandSelectors),
	})

	scaled := invoke("Image.toInt16", args{
		"value": invoke("Image.multiply", args{
			"image1": median,
			"image2": constImage(constants.ReflectanceScale),
		}),
	})

	exported := invoke("Image.clip", args{
		"input":    scaled,
		"geometry": valueRef("region"),
	})

	return &Expression{
		Result: "0",
		Values: map[string]*ValueNode{
			"0":      exported,
			"mask":   cloudMaskBody(),
			"region": geometry,
		},
	}
}
