package game

import (
	"github.com/prometheus/client_golang/prometheus"

	"d2mapi/packages/Memory/address"
	"d2mapi/packages/Memory/module"
	"d2mapi/packages/Memory/patch"
	"d2mapi/packages/Memory/version"
)

// RegisterMetrics registers every collector of the library with r.
func RegisterMetrics(r prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		module.ModuleLookups,
		address.Resolutions,
		patch.Writes,
		version.Detections,
	} {
		if err := r.Register(c); err != nil {
			return err
		}
	}
	return nil
}
