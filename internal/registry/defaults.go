package registry

// defaultSnapshot returns the embedded reference data. Company entries carry
// the coordinates of their main Indian campus; landmark and university
// entries carry the site itself. Gazetteer coordinates are city centers.
func defaultSnapshot() Snapshot {
	return Snapshot{
		Companies: []POI{
			{Name: "Microsoft", City: "Bangalore", State: "Karnataka", Latitude: 12.9716, Longitude: 77.5946},
			{Name: "Infosys", City: "Bangalore", State: "Karnataka", Latitude: 12.8458, Longitude: 77.6603, Keywords: []string{"infosys campus"}},
			{Name: "Wipro", City: "Bangalore", State: "Karnataka", Latitude: 12.9080, Longitude: 77.6850},
			{Name: "TCS", City: "Mumbai", State: "Maharashtra", Latitude: 19.0760, Longitude: 72.8777, Keywords: []string{"tata consultancy services"}},
			{Name: "Google", City: "Hyderabad", State: "Telangana", Latitude: 17.4435, Longitude: 78.3772},
			{Name: "Amazon", City: "Hyderabad", State: "Telangana", Latitude: 17.4410, Longitude: 78.3840},
			{Name: "Cognizant", City: "Chennai", State: "Tamil Nadu", Latitude: 12.9941, Longitude: 80.2450},
			{Name: "Zoho", City: "Chennai", State: "Tamil Nadu", Latitude: 12.9165, Longitude: 80.2270},
			{Name: "HCL", City: "Noida", State: "Uttar Pradesh", Latitude: 28.5355, Longitude: 77.3910, Keywords: []string{"hcl technologies"}},
			{Name: "Accenture", City: "Mumbai", State: "Maharashtra", Latitude: 19.0596, Longitude: 72.8656},
			{Name: "Flipkart", City: "Bangalore", State: "Karnataka", Latitude: 12.9352, Longitude: 77.6245},
			{Name: "Reliance", City: "Mumbai", State: "Maharashtra", Latitude: 19.0660, Longitude: 72.8680, Keywords: []string{"reliance industries"}},
			{Name: "ISRO", City: "Bangalore", State: "Karnataka", Latitude: 13.0350, Longitude: 77.5970},
		},
		Landmarks: []POI{
			{Name: "Gateway of India", City: "Mumbai", State: "Maharashtra", Latitude: 18.9220, Longitude: 72.8347},
			{Name: "India Gate", City: "Delhi", State: "Delhi", Latitude: 28.6129, Longitude: 77.2295},
			{Name: "Red Fort", City: "Delhi", State: "Delhi", Latitude: 28.6562, Longitude: 77.2410, Keywords: []string{"lal qila"}},
			{Name: "Qutub Minar", City: "Delhi", State: "Delhi", Latitude: 28.5245, Longitude: 77.1855},
			{Name: "Charminar", City: "Hyderabad", State: "Telangana", Latitude: 17.3616, Longitude: 78.4747},
			{Name: "Golconda Fort", City: "Hyderabad", State: "Telangana", Latitude: 17.3833, Longitude: 78.4011},
			{Name: "Taj Mahal", City: "Agra", State: "Uttar Pradesh", Latitude: 27.1751, Longitude: 78.0421},
			{Name: "Marina Beach", City: "Chennai", State: "Tamil Nadu", Latitude: 13.0500, Longitude: 80.2824},
			{Name: "Howrah Bridge", City: "Kolkata", State: "West Bengal", Latitude: 22.5851, Longitude: 88.3468},
			{Name: "Victoria Memorial", City: "Kolkata", State: "West Bengal", Latitude: 22.5448, Longitude: 88.3426},
			{Name: "Mysore Palace", City: "Mysuru", State: "Karnataka", Latitude: 12.3052, Longitude: 76.6552},
			{Name: "Lalbagh", City: "Bangalore", State: "Karnataka", Latitude: 12.9507, Longitude: 77.5848, Keywords: []string{"lalbagh botanical garden"}},
			{Name: "Meenakshi Temple", City: "Madurai", State: "Tamil Nadu", Latitude: 9.9195, Longitude: 78.1193, Keywords: []string{"meenakshi amman temple"}},
		},
		Universities: []POI{
			{Name: "Indian Institute of Science", City: "Bangalore", State: "Karnataka", Latitude: 13.0219, Longitude: 77.5671, Keywords: []string{"iisc", "iisc bangalore"}},
			{Name: "IIT Madras", City: "Chennai", State: "Tamil Nadu", Latitude: 12.9915, Longitude: 80.2337, Keywords: []string{"iit chennai"}},
			{Name: "IIT Bombay", City: "Mumbai", State: "Maharashtra", Latitude: 19.1334, Longitude: 72.9133, Keywords: []string{"iit mumbai", "iit powai"}},
			{Name: "IIT Delhi", City: "Delhi", State: "Delhi", Latitude: 28.5456, Longitude: 77.1926},
			{Name: "Anna University", City: "Chennai", State: "Tamil Nadu", Latitude: 13.0108, Longitude: 80.2354},
			{Name: "University of Madras", City: "Chennai", State: "Tamil Nadu", Latitude: 13.0694, Longitude: 80.2772, Keywords: []string{"madras university"}},
			{Name: "Jawaharlal Nehru University", City: "Delhi", State: "Delhi", Latitude: 28.5402, Longitude: 77.1662, Keywords: []string{"jnu"}},
			{Name: "VIT Vellore", City: "Vellore", State: "Tamil Nadu", Latitude: 12.9692, Longitude: 79.1559, Keywords: []string{"vit university"}},
		},
		Places: []Place{
			{Name: "Chennai", Aliases: []string{"Madras"}, State: "Tamil Nadu", Latitude: 13.0827, Longitude: 80.2707},
			{Name: "Bengaluru", Aliases: []string{"Bangalore"}, State: "Karnataka", Latitude: 12.9716, Longitude: 77.5946},
			{Name: "Mumbai", Aliases: []string{"Bombay"}, State: "Maharashtra", Latitude: 19.0760, Longitude: 72.8777},
			{Name: "Delhi", Aliases: []string{"New Delhi"}, State: "Delhi", Latitude: 28.7041, Longitude: 77.1025},
			{Name: "Puducherry", Aliases: []string{"Pondicherry", "Pondichéry"}, State: "Puducherry", Latitude: 11.9416, Longitude: 79.8083},
			{Name: "Hyderabad", State: "Telangana", Latitude: 17.3850, Longitude: 78.4867},
			{Name: "Kolkata", Aliases: []string{"Calcutta"}, State: "West Bengal", Latitude: 22.5726, Longitude: 88.3639},
			{Name: "Pune", State: "Maharashtra", Latitude: 18.5204, Longitude: 73.8567},
			{Name: "Ahmedabad", State: "Gujarat", Latitude: 23.0225, Longitude: 72.5714},
			{Name: "Surat", State: "Gujarat", Latitude: 21.1702, Longitude: 72.8311},
			{Name: "Jaipur", State: "Rajasthan", Latitude: 26.9124, Longitude: 75.7873},
			{Name: "Chandigarh", State: "Punjab", Latitude: 30.7333, Longitude: 76.7794},
			{Name: "Lucknow", State: "Uttar Pradesh", Latitude: 26.8467, Longitude: 80.9462},
			{Name: "Kochi", Aliases: []string{"Cochin"}, State: "Kerala", Latitude: 9.9312, Longitude: 76.2673},
			{Name: "Thiruvananthapuram", Aliases: []string{"Trivandrum"}, State: "Kerala", Latitude: 8.5241, Longitude: 76.9366},
			{Name: "Coimbatore", State: "Tamil Nadu", Latitude: 11.0168, Longitude: 76.9558},
			{Name: "Madurai", State: "Tamil Nadu", Latitude: 9.9252, Longitude: 78.1198},
			{Name: "Tiruvallur", Aliases: []string{"Thiruvallur"}, State: "Tamil Nadu", Latitude: 13.1439, Longitude: 79.9094},
			{Name: "Vellore", State: "Tamil Nadu", Latitude: 12.9165, Longitude: 79.1325},
			{Name: "Kanchipuram", Aliases: []string{"Kancheepuram"}, State: "Tamil Nadu", Latitude: 12.8342, Longitude: 79.7036},
			{Name: "Salem", State: "Tamil Nadu", Latitude: 11.6643, Longitude: 78.1460},
			{Name: "Tiruchirappalli", Aliases: []string{"Trichy"}, State: "Tamil Nadu", Latitude: 10.7905, Longitude: 78.7047},
			{Name: "Mysuru", Aliases: []string{"Mysore"}, State: "Karnataka", Latitude: 12.2958, Longitude: 76.6394},
			{Name: "Mangaluru", Aliases: []string{"Mangalore"}, State: "Karnataka", Latitude: 12.9141, Longitude: 74.8560},
			{Name: "Nagpur", State: "Maharashtra", Latitude: 21.1458, Longitude: 79.0882},
			{Name: "Visakhapatnam", Aliases: []string{"Vizag"}, State: "Andhra Pradesh", Latitude: 17.6868, Longitude: 83.2185},
			{Name: "Bhopal", State: "Madhya Pradesh", Latitude: 23.2599, Longitude: 77.4126},
			{Name: "Indore", State: "Madhya Pradesh", Latitude: 22.7196, Longitude: 75.8577},
			{Name: "Patna", State: "Bihar", Latitude: 25.5941, Longitude: 85.1376},
			{Name: "Guwahati", State: "Assam", Latitude: 26.1445, Longitude: 91.7362},
			{Name: "Bhubaneswar", State: "Odisha", Latitude: 20.2961, Longitude: 85.8245},
			{Name: "Noida", State: "Uttar Pradesh", Latitude: 28.5355, Longitude: 77.3910},
			{Name: "Gurugram", Aliases: []string{"Gurgaon"}, State: "Haryana", Latitude: 28.4595, Longitude: 77.0266},
			{Name: "Agra", State: "Uttar Pradesh", Latitude: 27.1767, Longitude: 78.0081},
		},
		States: []string{
			"Andhra Pradesh", "Assam", "Bihar", "Delhi", "Goa", "Gujarat",
			"Haryana", "Karnataka", "Kerala", "Madhya Pradesh", "Maharashtra",
			"Odisha", "Puducherry", "Punjab", "Rajasthan", "Tamil Nadu",
			"Telangana", "Uttar Pradesh", "West Bengal",
		},
	}
}
