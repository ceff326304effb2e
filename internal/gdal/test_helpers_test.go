package gdal

import "testing"

func useLocalGDAL(t *testing.T) {
	t.Helper()
	t.Setenv("SATKIT_GDAL_MODE", "local")
}
