// SPDX-License-Identifier: MIT

package roadnet

// Reference location names, in index order.
const (
	CityCenter      = "City Center"
	MainHospital    = "Main Hospital"
	TechPark        = "Tech Park"
	Airport         = "Airport"
	Mall            = "Mall"
	ResidentialArea = "Residential Area"
)

// ReferenceNames returns the six reference locations in index order.
func ReferenceNames() []string {
	return []string{CityCenter, MainHospital, TechPark, Airport, Mall, ResidentialArea}
}

// ReferenceMinutes returns the reference seed matrix (minutes, 0 = no road).
//
//	        CC  Hosp Tech Airp Mall Res
//	CC       0   10    0    0   15    0
//	Hosp    10    0   12    0    0   15
//	Tech     0   12    0   22    0    1
//	Airp     0    0   22    0    2    0
//	Mall    15    0    0    2    0    5
//	Res      0   15    1    0    5    0
func ReferenceMinutes() [][]int64 {
	return [][]int64{
		{0, 10, 0, 0, 15, 0},
		{10, 0, 12, 0, 0, 15},
		{0, 12, 0, 22, 0, 1},
		{0, 0, 22, 0, 2, 0},
		{15, 0, 0, 2, 0, 5},
		{0, 15, 1, 0, 5, 0},
	}
}

// Reference returns a fresh network built from the reference seed.
// The seed is valid, so construction cannot fail.
func Reference() *RoadNetwork {
	net, err := New(ReferenceNames(), ReferenceMinutes())
	if err != nil {
		panic("roadnet: reference seed rejected: " + err.Error())
	}

	return net
}
