package models

// Department is the fixed set of departments a record may belong to
type Department string

const (
	DepartmentCSE      Department = "CSE"
	DepartmentBBA      Department = "BBA"
	DepartmentMBA      Department = "MBA"
	DepartmentLAW      Department = "LAW"
	DepartmentPharmacy Department = "PHARMACY"
	DepartmentEnglish  Department = "ENGLISH"
)

// Departments lists every valid department value
var Departments = []Department{
	DepartmentCSE,
	DepartmentBBA,
	DepartmentMBA,
	DepartmentLAW,
	DepartmentPharmacy,
	DepartmentEnglish,
}
