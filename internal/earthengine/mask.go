package earthengine

import (
	"github.com/dhenenjay/orbital-insights/constants"
)

// CloudFree reports whether a QA60 quality-band sample is usable: the pixel is
// excluded when either the cloud bit or the cirrus bit is set.
func CloudFree(qa uint16) bool {
	cloud := qa&(1<<constants.QA60CloudBit) != 0
	cirrus := qa&(1<<constants.QA60CirrusBit) != 0
	return !cloud && !cirrus
}

// cloudMaskBody builds the lambda body mapped over the collection: select
// QA60, require both mask bits clear, apply the mask, keep the reflectance
// bands, and rescale to 0..1. The argumentReference "image" is bound by the
// enclosing function definition.
func cloudMaskBody() *ValueNode {
	img := argRef("image")

	qa := invoke("Image.select", args{
		"input":         img,
		"bandSelectors": constant([]any{"QA60"}),
	})

	cloudClear := invoke("Image.eq", args{
		"image1": invoke("Image.bitwiseAnd", args{
			"image1": qa,
			"image2": constImage(1 << constants.QA60CloudBit),
		}),
		"image2": constImage(0),
	})
	cirrusClear := invoke("Image.eq", args{
		"image1": invoke("Image.bitwiseAnd", args{
			"image1": qa,
			"image2": constImage(1 << constants.QA60CirrusBit),
		}),
		"image2": constImage(0),
	})

	mask := invoke("Image.and", args{
		"image1": cloudClear,
		"image2": cirrusClear,
	})

	masked := invoke("Image.updateMask", args{
		"image": img,
		"mask":  mask,
	})
	bands := invoke("Image.select", args{
		"input":         masked,
		"bandSelectors": constant([]any{"B.*"}),
	})
	return invoke("Image.divide", args{
		"image1": bands,
		"image2": constImage(constants.ReflectanceScale),
	})
}

// constImage wraps a scalar into a constant image, as the Image.* arithmetic
// functions operate image-on-image.
func constImage(v int) *ValueNode {
	return invoke("Image.constant", args{"value": constant(v)})
}
