package constants

// Sentinel-2 surface reflectance defaults for composite exports.
const (
	Sentinel2Collection = "COPERNICUS/S2_SR_HARMONIZED"

	// QA60 bitmask positions. A pixel is usable only when both bits are clear.
	QA60CloudBit  = 10
	QA60CirrusBit = 11

	// Reflectance values are stored scaled by 10000; divide on ingest,
	// multiply back before the int16 export.
	ReflectanceScale = 10000

	ExportScaleMeters = 10
	ExportCRS         = "EPSG:4326"
	ExportMaxPixels   = 1e10
)

// CompositeBands are the bands selected into the median composite, in output
// order: red, green, blue, near-infrared.
var CompositeBands = []string{"B4", "B3", "B2", "B8"}
