package models

// Vehicle categories accepted for listings.
const (
	VehicleCaravan   = "caravan"
	VehicleMotorhome = "motorhome"
	VehicleCamperVan = "camper_van"
)

// VehicleType is a category together with its display label.
type VehicleType struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var vehicleTypes = []VehicleType{
	{Value: VehicleCaravan, Label: "Caravan"},
	{Value: VehicleMotorhome, Label: "Motorhome"},
	{Value: VehicleCamperVan, Label: "Camper Van"},
}

// VehicleTypes returns a copy of the fixed category enumeration.
func VehicleTypes() []VehicleType {
	out := make([]VehicleType, len(vehicleTypes))
	copy(out, vehicleTypes)
	return out
}

// IsValidVehicleType reports whether v is one of the known categories.
func IsValidVehicleType(v string) bool {
	for _, t := range vehicleTypes {
		if t.Value == v {
			return true
		}
	}
	return false
}
