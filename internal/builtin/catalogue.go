package builtin

import "github.com/specialistvlad/algoprovider/internal/algorithm"

// Algorithm is a statically declared, compiled-in unit.
type Algorithm struct {
	algorithm.Base
}

type declaration struct {
	id    string
	name  string
	group string
}

func (d declaration) build() algorithm.Algorithm {
	return &Algorithm{Base: algorithm.NewBase(d.id, d.name, d.group)}
}

// catalogue is the fixed listing order of the compiled-in algorithms. The host
// shows them in this order by default, so entries are appended, never sorted.
var catalogue = []declaration{
	{"addtablefield", "Add field to attributes table", "Vector table"},
	{"aspect", "Aspect", "Raster terrain analysis"},
	{"autoincrementalfield", "Add autoincremental field", "Vector table"},
	{"basicstatisticsforfield", "Basic statistics for fields", "Vector analysis"},
	{"boundary", "Boundary", "Vector geometry"},
	{"boundingbox", "Bounding boxes", "Vector geometry"},
	{"checkvalidity", "Check validity", "Vector geometry"},
	{"concavehull", "Concave hull", "Vector geometry"},
	{"convexhull", "Convex hull", "Vector geometry"},
	{"createattributeindex", "Create attribute index", "Vector general"},
	{"createconstantraster", "Create constant raster layer", "Raster tools"},
	{"delaunay", "Delaunay triangulation", "Vector geometry"},
	{"deletecolumn", "Drop field(s)", "Vector table"},
	{"deleteduplicategeometries", "Delete duplicate geometries", "Vector general"},
	{"deleteholes", "Delete holes", "Vector geometry"},
	{"densifygeometries", "Densify geometries", "Vector geometry"},
	{"densifygeometriesinterval", "Densify geometries given an interval", "Vector geometry"},
	{"difference", "Difference", "Vector overlay"},
	{"dropgeometry", "Drop geometries", "Vector general"},
	{"dropmzvalues", "Drop M/Z values", "Vector geometry"},
	{"equivalentnumfield", "Add unique value index field", "Vector table"},
	{"explode", "Explode lines", "Vector geometry"},
	{"exportgeometryinfo", "Add geometry attributes", "Vector geometry"},
	{"extendlines", "Extend lines", "Vector geometry"},
	{"extentfromlayer", "Polygon from layer extent", "Vector general"},
	{"extractnodes", "Extract nodes", "Vector geometry"},
	{"extractspecificnodes", "Extract specific nodes", "Vector geometry"},
	{"fixeddistancebuffer", "Fixed distance buffer", "Vector geometry"},
	{"fixgeometry", "Fix geometries", "Vector geometry"},
	{"geometrybyexpression", "Geometry by expression", "Vector geometry"},
	{"gridpolygon", "Create grid", "Vector creation"},
	{"heatmap", "Heatmap (Kernel Density Estimation)", "Interpolation"},
	{"hillshade", "Hillshade", "Raster terrain analysis"},
	{"importintopostgis", "Import into PostGIS", "Database"},
	{"importintospatialite", "Import into Spatialite", "Database"},
	{"intersection", "Intersection", "Vector overlay"},
	{"linesintersection", "Line intersections", "Vector overlay"},
	{"linestopolygons", "Lines to polygons", "Vector geometry"},
	{"meancoords", "Mean coordinate(s)", "Vector analysis"},
	{"merge", "Merge vector layers", "Vector general"},
	{"mergelines", "Merge lines", "Vector geometry"},
	{"nearestneighbouranalysis", "Nearest neighbour analysis", "Vector analysis"},
	{"offsetline", "Offset line", "Vector geometry"},
	{"orthogonalize", "Orthogonalize", "Vector geometry"},
	{"pointdistance", "Distance matrix", "Vector analysis"},
	{"pointonsurface", "Point on surface", "Vector geometry"},
	{"pointsalonggeometry", "Points along geometry", "Vector geometry"},
	{"pointsinpolygon", "Count points in polygon", "Vector analysis"},
	{"pointslayerfromtable", "Create points layer from table", "Vector creation"},
	{"poleofinaccessibility", "Pole of inaccessibility", "Vector geometry"},
	{"polygonize", "Polygonize", "Vector geometry"},
	{"polygonstolines", "Polygons to lines", "Vector geometry"},
	{"postgisexecutesql", "PostgreSQL execute SQL", "Database"},
	{"randomextract", "Random extract", "Vector selection"},
	{"randomextractwithinsubsets", "Random extract within subsets", "Vector selection"},
	{"randompointsalonglines", "Random points along line", "Vector creation"},
	{"randompointsextent", "Random points in extent", "Vector creation"},
	{"randompointslayer", "Random points in layer bounds", "Vector creation"},
	{"randompointspolygons", "Random points inside polygons", "Vector creation"},
	{"rasterlayerstatistics", "Raster layer statistics", "Raster analysis"},
	{"regularpoints", "Regular points", "Vector creation"},
	{"reverselinedirection", "Reverse line direction", "Vector geometry"},
	{"ruggedness", "Ruggedness index", "Raster terrain analysis"},
	{"saveselectedfeatures", "Save selected features", "Vector general"},
	{"selectbyattribute", "Select by attribute", "Vector selection"},
	{"selectbyexpression", "Select by expression", "Vector selection"},
	{"serviceareafromlayer", "Service area (from layer)", "Network analysis"},
	{"serviceareafrompoint", "Service area (from point)", "Network analysis"},
	{"setmvalue", "Set M value", "Vector geometry"},
	{"setzvalue", "Set Z value", "Vector geometry"},
	{"shortestpathlayertopoint", "Shortest path (layer to point)", "Network analysis"},
	{"shortestpathpointtolayer", "Shortest path (point to layer)", "Network analysis"},
	{"shortestpathpointtopoint", "Shortest path (point to point)", "Network analysis"},
	{"simplifygeometries", "Simplify geometries", "Vector geometry"},
	{"singlepartstomultiparts", "Singleparts to multipart", "Vector geometry"},
	{"singlesidedbuffer", "Single sided buffer", "Vector geometry"},
	{"slope", "Slope", "Raster terrain analysis"},
	{"smooth", "Smooth", "Vector geometry"},
	{"snapgeometriestolayer", "Snap geometries to layer", "Vector geometry"},
	{"spatialiteexecutesql", "Spatialite execute SQL", "Database"},
	{"spatialindex", "Create spatial index", "Vector general"},
	{"splitwithlines", "Split with lines", "Vector overlay"},
	{"sumlines", "Sum line lengths", "Vector analysis"},
	{"symmetricaldifference", "Symmetrical difference", "Vector overlay"},
	{"texttofloat", "Text to float", "Vector table"},
	{"translate", "Translate", "Vector geometry"},
	{"truncatetable", "Truncate table", "Vector general"},
	{"union", "Union", "Vector overlay"},
	{"uniquevalues", "List unique values", "Vector analysis"},
	{"variabledistancebuffer", "Variable distance buffer", "Vector geometry"},
	{"vectorsplit", "Split vector layer", "Vector general"},
	{"voronoipolygons", "Voronoi polygons", "Vector geometry"},
	{"zonalstatistics", "Zonal statistics", "Raster analysis"},
}

// Algorithms returns a fresh instance of every compiled-in algorithm, in
// declaration order. Instances share no state with earlier calls.
func Algorithms() []algorithm.Algorithm {
	return build(catalogue)
}

func build(decls []declaration) []algorithm.Algorithm {
	algs := make([]algorithm.Algorithm, 0, len(decls))
	for _, d := range decls {
		algs = append(algs, d.build())
	}
	return algs
}
