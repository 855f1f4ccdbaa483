package driver

import (
	"deliveryapp/internal/pkg/errs"
)

// VehicleType classifies what a driver rides. It only affects dispatch
// hints for now; no routing logic depends on it.
type VehicleType int

const (
	VehicleUnknown VehicleType = iota
	VehicleBicycle
	VehicleMotorcycle
	VehicleCar
)

func getVehicleTypeStrings() map[VehicleType]string {
	return map[VehicleType]string{
		VehicleBicycle:    "Bicycle",
		VehicleMotorcycle: "Motorcycle",
		VehicleCar:        "Car",
	}
}

// VehicleTypeFromString maps a transport value to a VehicleType.
func VehicleTypeFromString(value string) (VehicleType, error) {
	for vehicleType, name := range getVehicleTypeStrings() {
		if name == value {
			return vehicleType, nil
		}
	}
	return VehicleUnknown, errs.NewValueIsInvalidError("vehicleType")
}

func (v VehicleType) Validate() error {
	if _, ok := getVehicleTypeStrings()[v]; !ok {
		return errs.NewValueIsInvalidError("vehicleType")
	}
	return nil
}

func (v VehicleType) String() string {
	if name, ok := getVehicleTypeStrings()[v]; ok {
		return name
	}
	return "Unknown"
}
