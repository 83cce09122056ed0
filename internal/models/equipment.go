package models

// Equipment — одна единица лабораторного оборудования с данными контракта.
type Equipment struct {
	ID                int64
	Asset             string
	ParentAsset       string
	Description       string
	Model             string
	SerialNumber      string
	Manufacturer      string
	Location          string
	CurrentCoverage   string
	EndUser           string
	ServiceProvider   string
	Status            string
	ResearchUnit      string
	ContractStartDate string // ISO-8601, может быть пустой
	ContractEndDate   string // ISO-8601, может быть пустой
	ContractCost      float64
	Planner           string
	Site              string
}

type FieldKind int

const (
	FieldText FieldKind = iota
	FieldDate
	FieldNumber
)

// FieldSpec описывает одно поле Equipment для форм и фильтров.
type FieldSpec struct {
	Name  string
	Label string
	Kind  FieldKind
}

func (f FieldSpec) IsDate() bool   { return f.Kind == FieldDate }
func (f FieldSpec) IsNumber() bool { return f.Kind == FieldNumber }

// EquipmentFields — явный перечень полей вместо итерации по ключам записи.
// Порядок совпадает с колонками импорта/экспорта.
var EquipmentFields = []FieldSpec{
	{Name: "asset", Label: "Asset", Kind: FieldText},
	{Name: "parentAsset", Label: "Parent Asset", Kind: FieldText},
	{Name: "description", Label: "Description", Kind: FieldText},
	{Name: "model", Label: "Model", Kind: FieldText},
	{Name: "serialNumber", Label: "Serial Number", Kind: FieldText},
	{Name: "manufacturer", Label: "Manufacturer", Kind: FieldText},
	{Name: "location", Label: "Location", Kind: FieldText},
	{Name: "currentCoverage", Label: "Current Coverage", Kind: FieldText},
	{Name: "endUser", Label: "End User", Kind: FieldText},
	{Name: "serviceProvider", Label: "Service Provider", Kind: FieldText},
	{Name: "status", Label: "Status", Kind: FieldText},
	{Name: "researchUnit", Label: "Research Unit", Kind: FieldText},
	{Name: "contractStartDate", Label: "Contract Start Date", Kind: FieldDate},
	{Name: "contractEndDate", Label: "Contract End Date", Kind: FieldDate},
	{Name: "contractCost", Label: "Contract Cost", Kind: FieldNumber},
	{Name: "planner", Label: "Planner", Kind: FieldText},
	{Name: "site", Label: "Site", Kind: FieldText},
}

// FilterableFields — поля, доступные в выпадающем списке фильтра
// (всё, кроме id/planner/site — у них свои фильтры).
func FilterableFields() []FieldSpec {
	out := make([]FieldSpec, 0, len(EquipmentFields))
	for _, f := range EquipmentFields {
		if f.Name == "planner" || f.Name == "site" {
			continue
		}
		out = append(out, f)
	}
	return out
}

// FieldByName возвращает спецификацию поля по имени.
func FieldByName(name string) (FieldSpec, bool) {
	for _, f := range EquipmentFields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}
