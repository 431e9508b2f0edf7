package pluto

// Pluto99 coefficient tables for the heliocentric ecliptic rectangular
// coordinates of Pluto, J2000 frame. Each axis carries three term groups
// weighted by successive powers of the normalized time parameter; a term
// contributes amp*sin(freq*t+phase) with t in Julian centuries from J2000,
// amplitudes in AU, frequencies in rad/century, phases in rad.
//
// The tables are static fitted data. Do not edit by hand.

var xTable = seriesTable{
	offset: 9.922274,
	slope:  0.154154,
	terms: [3][]term{
		{
			{32.27819136464132, 2.5428899609581004, 5.48438117063687},
			{30.13853017045752, 2.332827404120815, 5.375886795008159},
			{20.253882296938656, 2.2277961257021723, 6.077404337319759},
			{19.59535244767899, 2.647921239376743, 2.5870322233411494},
			{18.366034767904093, 2.4378586825394577, 4.944389365457857},
			{12.295496717846095, 2.7529525177953857, 2.4048555143174193},
			{9.01085329961086, 2.8579837962140284, 2.468847458736017},
			{3.3857150603292863, 5.085779921916201, 6.185917160053796},
			{2.9698882443202095, 5.190811200334844, 2.8826829041494997},
			{1.213013058056915, 2.1227648472835297, 0.7074592984735439},
			{1.0967818276798835, 5.295842478753486, 1.554139989824595},
			{1.074540583442295, 4.980748643497558, 2.12574033341001},
			{1.0173433419857205, 7.523638604455658, 4.4878142979782085},
			{1.0031824266283522, 7.8387324397115865, 1.0302537354186105},
			{0.8502082927781441, 4.770686086660272, 0.10027159139436118},
			{0.7974284297906518, 7.733701161292944, 1.5201190472083572},
			{0.790691136074703, 2.963015074632671, 1.6991518639120684},
			{0.6362906866046605, 7.628669882874301, 6.137100229066118},
			{0.5749604484481589, 7.313576047618373, 3.621718937210749},
			{0.5139090714034091, 10.171559843832402, 0.17656537694834273},
			{0.5126965394254801, 5.400873757172129, 4.725546382573308},
			{0.49594687539733684, 4.875717365078915, 5.968436821558363},
			{0.484689070647414, 7.418607326037016, 4.414280197900709},
			{0.480304249923257, 7.94376371813023, 0.8087445894670175},
			{0.38868279312516174, 10.381622400669688, 5.546231964024795},
			{0.3376467665315539, 10.066528565413758, 0.8007906950179368},
			{0.3097554992815129, 10.276591122251045, 5.667667446229075},
			{0.2910372359498849, 9.961497286995115, 0.7222022886664741},
			{0.2602469199580718, 10.48665367908833, 4.885160357514502},
			{0.23080606152206323, 9.856466008576474, 1.2363001633889321},
			{0.06080708270070541, 12.819481083209144, 3.0228441032470807},
			{0.056015409737435046, 4.66565480824163, 1.012013461526747},
			{0.052814143533847724, 12.609418526371858, 4.89944274690674},
			{0.04788194997057595, 7.20854476919973, 4.551469360960566},
			{0.04307688301499005, 5.5059050355907715, 3.233652372833553},
			{0.03753340812726213, 12.504387247953215, 5.997235333494356},
			{0.03245262302709768, 12.924512361627787, 2.726140369916045},
			{0.032355806206127456, 8.048794996548873, 6.253386160756137},
			{0.019395704813221046, 12.714449804790501, 2.5348885482401013},
			{0.01834167828220561, 13.029543640046429, 3.245642704171352},
			{0.016846085003892706, 10.591684957506972, 3.8823271888649264},
			{0.0154471395522078, 15.257339765748602, 0.8035093327014505},
			{0.01540217952047859, 9.75143473015783, 2.2465431622348024},
			{0.010853556386717218, 15.467402322585889, 0.3130592167374443},
			{0.008075384469554336, 15.15230848732996, 0.8574238054453014},
			{0.007624565889678035, 15.362371044167245, 0.605731939065235},
			{0.005397223567795315, 15.57243360100453, 5.842644373167228},
			{0.005292189683637927, 15.047277208911316, 1.4814651382645503},
			{0.00473549160622703, 12.399355969534573, 6.166217330994696},
			{0.003985524458022027, 0.0, 4.71238898038469},
			{0.0039058777490604385, 17.800229726706704, 1.0320454766566949},
			{0.003802656328273071, 14.942245930492675, 1.9932139132650852},
			{0.0017702412483561836, 18.01029228354399, 0.4663488551662854},
			{0.0015273040290659009, 18.115323561962633, 5.731412511304271},
			{0.0014791917078174168, 17.485135891450774, 2.281552462590508},
			{0.0013889365601433916, 17.590167169869417, 1.4282296069380636},
			{0.0013646754059072044, 13.134574918465072, 2.4653989036561867},
			{0.001192647427563658, 17.69519844828806, 1.5903149080073744},
			{0.0011776446838593206, 17.905261005125347, 5.5264473504533695},
			{0.0005959373004507252, 20.23808840924616, 0.3202659240687024},
			{0.0004938758550437684, 20.343119687664803, 1.0020014788525964},
			{0.00044628059784429503, 0.21006255683728545, 1.878542439790334},
			{0.00039191500632552897, 12.29432469111593, 0.013252160999648366},
			{0.0003258586924857995, 20.133057130827517, 0.20695798898896484},
			{0.00031943612708258283, 0.31509383525592816, 0.7924501280507259},
			{0.00029380506058225293, 15.677464879423173, 4.774887606489864},
			{0.0002761377234617362, 20.028025852408874, 0.6132700493004554},
			{0.0002706211363469927, 14.837214652074032, 3.0729127115756545},
			{0.00026746857889397955, 20.448150966083446, 4.782678136869613},
			{0.00021380790003990425, 20.55318224450209, 3.298574031154527},
			{0.00019594775613752924, 22.886009648622903, 1.7859373906525513},
			{0.00017558814669751315, 20.658213522920732, 2.6198831311012993},
			{0.00016243801125655067, 0.10503127841864272, 2.993081974796828},
			{0.00014137660856600322, 23.201103483878832, 0.5124225648536662},
			{0.0001253405567221012, 23.09607220546019, 1.216371451280226},
			{0.00012151214298288172, 22.991040927041546, 6.109586004276677},
			{0.00010431282151780623, 18.220354840381276, 4.617758819756113},
			{0.00010220240700954648, 17.38010461303213, 3.352717900188078},
			{9.264448459996246e-05, 22.675947091785616, 2.848947895040368},
			{6.983757417077076e-05, 25.32386833116236, 0.21203765781477507},
			{6.950259369331192e-05, 22.78097837020426, 2.1983366094747896},
			{6.645580796344047e-05, 22.570915813366973, 2.9661339760660015},
			{4.7510016742509896e-05, 25.533930887999645, 4.408150171245972},
			{4.2793531516690085e-05, 25.113805774325073, 5.673915115678084},
			{3.39426486782813e-05, 0.4201251136745709, 5.96039689134423},
			{3.182934424980173e-05, 25.63896216641829, 2.74159463392244},
			{2.274537307533923e-05, 25.218837052743716, 6.187294916375026},
			{1.8308732711847404e-05, 25.428899609581002, 1.8882529576828815},
			{1.7760719827386035e-05, 19.92299457399023, 1.487057778798736},
			{1.318624919377562e-05, 27.971789570539105, 3.551841404309479},
			{1.2606182485174813e-05, 20.763244801339376, 1.9311412677899011},
			{9.508594854690892e-06, 25.74399344483693, 5.484041095633638},
			{9.119103545974487e-06, 28.076820848957748, 4.7710643613546635},
			{8.935745730511398e-06, 23.306134762297475, 5.753161128976078},
			{6.638322960642701e-06, 30.619710809915848, 4.860168265816197},
			{6.283135327121912e-06, 27.76172701370182, 3.4270254095042283},
			{5.502108254633066e-06, 22.46588453494833, 3.9599701927646738},
			{5.415860846747266e-06, 27.656695735283176, 4.009710721542541},
			{5.268482038341134e-06, 30.40964825307856, 0.29012052211446826},
			{4.639984187512251e-06, 28.286883405795034, 0.4639192728522191},
			{4.177657915243771e-06, 28.18185212737639, 2.5426589036619625},
			{3.6953938929617624e-06, 30.514679531497205, 4.976605528349324},
			{3.2066656449803674e-06, 27.866758292120462, 5.399992893583964},
			{2.900605817824742e-06, 25.00877449590643, 0.31278153304597},
			{2.5112223880866943e-06, 30.199585696241275, 6.155108979585196},
			{2.355171321837722e-06, 30.30461697465992, 0.22066594837770453},
			{1.6871902046398198e-06, 30.72474208833449, 4.024698227154074},
			{1.3317017250439715e-06, 30.829773366753134, 5.404892433224302},
			{1.2352641027960247e-06, 33.16260077087395, 6.108315736508298},
			{9.868763096544424e-07, 33.267632049292594, 5.196172084391575},
			{7.414813454279034e-07, 25.849024723255575, 3.6800199603391754},
			{7.262511257289932e-07, 33.05756949245531, 3.8266266598423884},
			{6.752205562609144e-07, 32.84750693561802, 3.4027562923534873},
			{6.403866583073296e-07, 32.952538214036664, 1.6030326133456498},
			{5.304936838251335e-07, 35.60045945341341, 4.43809523991823},
			{4.65594083984054e-07, 35.81052201025069, 4.432049083927945},
			{4.097197267069524e-07, 27.551664456864533, 4.647537203378492},
			{3.554940160971862e-07, 32.74247565719938, 4.711293274052993},
			{3.3750159317327796e-07, 38.14334941437151, 3.9380262639458836},
			{3.3640285660356186e-07, 35.70549073183205, 5.049772098855496},
			{3.1457621844670707e-07, 28.391914684213678, 5.751003437478266},
			{2.426386402354691e-07, 38.35341197120879, 3.813871396171467},
			{2.360317520198286e-07, 33.37266332771124, 4.50131759480672},
			{2.2903359114642832e-07, 35.91555328866934, 3.677906553061165},
			{1.8313241015268418e-07, 37.82825557911558, 4.872943643663959},
			{1.7633507256576946e-07, 35.28536561815748, 5.202357287090363},
			{1.7566855045970248e-07, 38.03831813595286, 4.62966724518567},
			{1.7453457506118954e-07, 35.39039689657612, 3.9709266426577496},
			{1.7107299625601923e-07, 37.93328685753422, 4.228573357036382},
			{1.6872870686951635e-07, 38.458443249627436, 3.0678830541887447},
			{1.4851492765568035e-07, 38.24838069279015, 3.4531293496199758},
			{1.309213456081513e-07, 30.094554417822632, 0.8430466989190931},
			{1.1414066717100695e-07, 35.495428174994764, 0.2945587836632281},
			{8.225252244432035e-08, 40.686239375329606, 4.480947608583056},
			{6.694370276539666e-08, 30.934804645171777, 3.9928968339330346},
			{5.5077795592588706e-08, 40.47617681849232, 4.321966507522334},
			{5.0945599605720467e-08, 40.89630193216689, 4.198654099744845},
		},
		{
			{23.632085021616184, 2.2277961257021723, 1.3621918230341687},
			{21.388331720888296, 2.7529525177953857, 5.835139123419175},
			{18.43228089973254, 2.332827404120815, 2.669867477618705},
			{11.838893598178933, 2.4378586825394577, 3.085813624231409},
			{10.453114423219013, 2.8579837962140284, 0.9004854280164213},
			{6.834430551943513, 2.5428899609581004, 4.419700375159064},
			{5.5741348297650095, 2.647921239376743, 4.689334273817568},
			{3.549536980719612, 5.085779921916201, 5.827953468099947},
			{2.3232860792727665, 5.295842478753486, 0.46506205239070086},
			{2.1529110794249897, 4.980748643497558, 4.471046228497339},
			{1.7322052558723395, 7.418607326037016, 0.6419018087187112},
			{1.654366235694328, 4.875717365078915, 3.4989116885683673},
			{1.1390549400957772, 2.1227648472835297, 2.2690657418035496},
			{1.0522876250232995, 7.523638604455658, 2.001060036179885},
			{1.0086640010686039, 7.8387324397115865, 4.6892961222718865},
			{1.0035045717618367, 4.770686086660272, 1.6664155616478065},
			{0.9078095351955037, 7.733701161292944, 3.260291949511176},
			{0.7662718634981989, 2.963015074632671, 0.1425983566662445},
			{0.6765975297568513, 7.313576047618373, 5.185155852176562},
			{0.6172525034259165, 7.628669882874301, 2.8731430698086515},
			{0.6102468672984339, 5.400873757172129, 3.153553728327518},
			{0.5579375837318574, 7.94376371813023, 5.534867356933057},
			{0.33500009408952053, 5.190811200334844, 1.200509469086864},
			{0.3049658264934041, 9.961497286995115, 4.259980089361218},
			{0.30230496023124964, 10.48665367908833, 3.3207986668974},
			{0.26901220329557196, 9.856466008576474, 2.799766331482692},
			{0.2515963512518083, 10.381622400669688, 2.025659292624574},
			{0.17505414021922866, 10.276591122251045, 2.2528205823196092},
			{0.11249927967309284, 10.066528565413758, 3.399651751542015},
			{0.06208175143712072, 12.924512361627787, 0.34610075483722214},
			{0.05844412856838436, 10.171559843832402, 4.6282827541273805},
			{0.052693474582247546, 4.66565480824163, 2.574948049340052},
			{0.045945355546244994, 7.20854476919973, 6.117929643801628},
			{0.04315102510998046, 12.504387247953215, 1.5237493550499772},
			{0.041536736571802596, 5.5059050355907715, 1.6336024836567733},
			{0.030727941851242235, 8.048794996548873, 4.692132581358624},
			{0.02920282582672146, 12.819481083209144, 5.847843093106065},
			{0.02452881619919118, 12.609418526371858, 4.243940193486245},
			{0.021594624106127093, 13.029543640046429, 1.6905079743944404},
			{0.015960872887786807, 10.591684957506972, 2.311167508936522},
			{0.01459930418766799, 9.75143473015783, 3.8184264248958213},
			{0.011531209344363202, 12.714449804790501, 5.759540252587672},
			{0.00704354104197138, 15.362371044167245, 3.110349818584213},
			{0.006552952934940192, 15.257339765748602, 3.633552058790976},
			{0.00626822997352488, 15.57243360100453, 4.278853735187978},
			{0.005295762626095822, 12.399355969534573, 1.3976188016579523},
			{0.004797944982719666, 15.047277208911316, 4.892354258775785},
			{0.004406581935688377, 14.942245930492675, 3.5520370937819736},
			{0.0041115916983769886, 15.15230848732996, 1.310375663026303},
			{0.00369140229077729, 15.467402322585889, 3.8101275462725233},
			{0.002376789099675536, 0.0, 1.5707963267948966},
			{0.0018545770859411666, 17.590167169869417, 5.812789924335484},
			{0.0017771168855566831, 18.115323561962633, 4.160994563384978},
			{0.0017248631532412607, 17.485135891450774, 3.851000970211379},
			{0.001535829080003068, 17.905261005125347, 3.4192008621648102},
			{0.0015238009337757853, 18.01029228354399, 2.017444374508189},
			{0.001300953385276889, 13.134574918465072, 0.9068058574873158},
			{0.0007989700314703139, 17.800229726706704, 1.093784740868885},
			{0.0004344934981242229, 20.133057130827517, 3.583015350510611},
			{0.0003838686546369553, 12.29432469111593, 1.5574437916348676},
			{0.0003447323176866491, 0.31509383525592816, 5.520357762482872},
			{0.0003421273640856721, 17.69519844828806, 2.014866977373204},
			{0.0003213343485632374, 20.028025852408874, 2.1778088954020878},
			{0.00031782148043530225, 20.23808840924616, 1.2809719666137727},
			{0.00028429866987448796, 20.343119687664803, 3.366495340086596},
			{0.00027417576693549903, 15.677464879423173, 3.1974468882738933},
			{0.00025863068036890025, 14.837214652074032, 4.652188939673909},
			{0.00020830663543199617, 20.55318224450209, 5.932072896205643},
			{0.00020471187353166627, 20.658213522920732, 1.0532640364231365},
			{0.00020112423789229964, 0.10503127841864272, 4.56671969193399},
			{0.00020015365545099486, 20.448150966083446, 3.278975651135279},
			{0.00019409127951878238, 23.09607220546019, 3.3250555595932827},
			{0.0001868211173300035, 22.78097837020426, 0.9476730814747651},
			{0.00018234949119773223, 0.21006255683728545, 3.2566036002526926},
			{0.00016481260780192597, 23.201103483878832, 5.226052281867576},
			{0.00012305003387290506, 22.675947091785616, 5.8790264969931405},
			{0.00011714230510628, 22.886009648622903, 2.378906901425696},
			{0.00011515630866024556, 25.218837052743716, 2.768228225499941},
			{9.91948370177e-05, 18.220354840381276, 3.0412197634675047},
			{9.707086605080726e-05, 17.38010461303213, 4.926683961438514},
			{8.342112976955979e-05, 22.991040927041546, 3.057370547518776},
			{7.748864305137878e-05, 22.570915813366973, 4.53434966477044},
			{6.731888722274928e-05, 25.63896216641829, 1.3598342845737488},
			{5.0647085058409966e-05, 25.113805774325073, 0.9485646869223076},
			{3.464504928924274e-05, 0.4201251136745709, 4.378492337639581},
			{3.457160925625879e-05, 25.533930887999645, 4.935174254856309},
			{1.89636705639097e-05, 25.428899609581002, 3.1348812325457738},
			{1.846241105716886e-05, 27.866758292120462, 1.1722690357491543},
			{1.682696962643657e-05, 19.92299457399023, 3.047407826133479},
			{1.5334432002942265e-05, 25.32386833116236, 4.530864390071691},
			{1.2032351186894474e-05, 20.763244801339376, 0.38181798913707793},
			{1.181664356070483e-05, 25.74399344483693, 3.877950747992966},
			{1.079064110305117e-05, 28.18185212737639, 2.4064590127131726},
			{8.443911653693739e-06, 23.306134762297475, 4.180803518477717},
			{7.533601426657106e-06, 27.76172701370182, 1.1144294520149953},
			{7.133761798798174e-06, 27.971789570539105, 2.3903081605965872},
			{7.133280882189624e-06, 30.30461697465992, 2.97513784720202},
			{6.543078050793846e-06, 27.656695735283176, 5.588391850064413},
			{6.50587185854527e-06, 28.076820848957748, 2.0058237797017213},
			{5.603385075734875e-06, 30.72474208833449, 1.919810491551335},
			{5.282045741097162e-06, 28.286883405795034, 5.146843239391113},
			{5.27990801388694e-06, 22.46588453494833, 5.529105344517345},
			{2.989776869215483e-06, 30.619710809915848, 2.8927063693811776},
			{2.9355851515987756e-06, 30.199585696241275, 1.4001952594994778},
			{2.7409682428994544e-06, 25.00877449590643, 1.8804432818321026},
			{2.420581708004167e-06, 30.514679531497205, 1.5698210018319037},
			{1.623537589839903e-06, 30.829773366753134, 3.802587964588032},
			{1.2521959449004673e-06, 32.952538214036664, 1.4985136248160866},
			{1.0010077881899523e-06, 33.16260077087395, 2.0695438439573763},
			{9.606375170520377e-07, 30.40964825307856, 1.812772576736282},
			{7.114271808155407e-07, 33.267632049292594, 3.022603515357791},
			{7.08039787117397e-07, 25.849024723255575, 2.0649077805573053},
			{4.830789352223506e-07, 33.05756949245531, 3.329091437005235},
			{4.7030723722670124e-07, 32.84750693561802, 2.887990406214887},
			{4.584802930464335e-07, 32.74247565719938, 6.2418114971354655},
			{3.8722626739165815e-07, 27.551664456864533, 6.1904503159589055},
			{3.805136185245377e-07, 35.495428174994764, 1.520960062592525},
			{3.344007077276235e-07, 35.39039689657612, 2.694569547106206},
			{3.0592196923641645e-07, 33.37266332771124, 2.9071605921268273},
			{3.0335864214889985e-07, 28.391914684213678, 4.189511882195468},
			{3.024603815537775e-07, 37.93328685753422, 2.0347263613062507},
			{2.7987936727653314e-07, 35.91555328866934, 2.146760937636291},
			{2.7543124589419525e-07, 35.70549073183205, 1.5786901624596732},
			{2.672434752094909e-07, 35.81052201025069, 1.5996094000070618},
			{2.2324352802849595e-07, 37.82825557911558, 0.13234377005762346},
			{2.2158935800986578e-07, 35.28536561815748, 0.40902239672819846},
			{1.9922705769289003e-07, 38.458443249627436, 1.5391044449712843},
			{1.6450354295852332e-07, 38.24838069279015, 0.7258166850775256},
			{1.4953184808065548e-07, 38.35341197120879, 0.29860706880522625},
			{1.2279565858186157e-07, 30.094554417822632, 2.4279309090787966},
			{6.989652140875846e-08, 35.60045945341341, 2.9816955863510164},
			{6.282631996371444e-08, 40.47617681849232, 2.549121393547157},
			{6.136128734310565e-08, 30.934804645171777, 2.407302132039202},
			{5.846355436718773e-08, 40.37114554007368, 0.5047377040651244},
			{5.235396504745945e-08, 38.03831813595286, 1.1096864842428427},
		},
		{
			{44.07760752815209, 2.332827404120815, 2.1037418961357233},
			{23.39323465894096, 2.647921239376743, 5.605546204474115},
			{18.641032107623246, 2.4378586825394577, 2.6072810400570265},
			{15.64067092009699, 2.2277961257021723, 2.8815592289371046},
			{15.063935374103604, 2.7529525177953857, 5.8798588173312964},
			{10.936831068477007, 2.5428899609581004, 6.10903378102879},
			{8.193694451741031, 2.8579837962140284, 5.749130748956747},
			{4.115176099303948, 5.190811200334844, 6.228197205313223},
			{2.7732110784096373, 5.085779921916201, 5.1311791933971875},
			{1.992069593431182, 7.523638604455658, 1.2102217756027194},
			{1.9350482398154032, 4.980748643497558, 4.725643515921844},
			{1.4566941385519139, 7.733701161292944, 4.475243346613627},
			{1.2678549173149793, 4.875717365078915, 2.5120329836440063},
			{1.130164768519881, 7.8387324397115865, 4.4577983497584395},
			{0.9351994945334446, 5.295842478753486, 3.9624532687346323},
			{0.8154315239469426, 7.628669882874301, 2.849208188623228},
			{0.6947406045408668, 4.770686086660272, 3.1822518791671635},
			{0.5657582351401519, 7.418607326037016, 0.21854541424745583},
			{0.5406409580030623, 10.381622400669688, 2.5986015204201935},
			{0.5216004848744257, 7.313576047618373, 0.4201336241058198},
			{0.46107522184030814, 5.400873757172129, 1.358530017743202},
			{0.46010354918264096, 10.066528565413758, 4.288908026987584},
			{0.431075066213086, 9.961497286995115, 3.5620927739776036},
			{0.38745971586171896, 7.94376371813023, 4.055237450536602},
			{0.3797695245043165, 10.276591122251045, 2.165702403159216},
			{0.3021623591978241, 2.1227648472835297, 3.828677590141007},
			{0.2706291609997779, 10.171559843832402, 3.486812399347752},
			{0.2112306819029678, 2.963015074632671, 4.871430878937778},
			{0.2067361194513448, 10.48665367908833, 1.765648531048014},
			{0.1867069205134242, 9.856466008576474, 4.358040205716985},
			{0.09782320243471918, 12.819481083209144, 6.01708219546729},
			{0.07810889068988051, 12.609418526371858, 1.7212246326165535},
			{0.04085080529206803, 12.714449804790501, 5.364583695528754},
			{0.03376738213193946, 12.924512361627787, 0.21060680858157732},
			{0.032022820845066774, 12.504387247953215, 2.8392068139871545},
			{0.01568961580119351, 13.029543640046429, 0.24147734171265517},
			{0.013992329052787604, 4.66565480824163, 4.136262259834535},
			{0.013797673134746917, 15.467402322585889, 3.6289787338515977},
			{0.012510113852703226, 7.20854476919973, 1.4005246596915466},
			{0.011389141299045892, 5.5059050355907715, 0.02881710089976905},
			{0.010853827032473106, 15.362371044167245, 3.7482986571902734},
			{0.008263787078209538, 8.048794996548873, 3.1326945737421763},
			{0.007134051160263756, 15.047277208911316, 4.2981577606471415},
			{0.007030086616413166, 15.257339765748602, 3.9402978229755523},
			{0.006559154341038073, 15.15230848732996, 4.596221643591573},
			{0.0042835423255945864, 10.591684957506972, 0.7396735531005937},
			{0.003987648886326162, 15.57243360100453, 2.6972675880307757},
			{0.003918359039575246, 9.75143473015783, 5.390707590479639},
			{0.0037606093704034686, 12.399355969534573, 2.487797374555708},
			{0.003140822588775971, 14.942245930492675, 5.140622587361387},
			{0.0027839511945837695, 18.01029228354399, 3.703712678635968},
			{0.002524909715623683, 17.590167169869417, 4.397961390756265},
			{0.0025025710555842506, 17.800229726706704, 4.028238061638644},
			{0.00204970694462474, 17.69519844828806, 6.143335053179558},
			{0.0012441971294755412, 18.115323561962633, 2.554063720196717},
			{0.0012163379710772753, 17.485135891450774, 5.4384679871524355},
			{0.0009378020596999249, 17.905261005125347, 2.407767264132888},
			{0.0006567375273570926, 0.0, 1.5707963267948966},
			{0.0005664919018190884, 0.21006255683728545, 5.026904494156303},
			{0.0005506839668552263, 20.133057130827517, 3.0849061935575013},
			{0.0003695025659813036, 20.55318224450209, 0.058954259056962166},
			{0.0003567715546204584, 20.23808840924616, 3.5929990609625317},
			{0.0003516178337419508, 13.134574918465072, 5.633153447644294},
			{0.0002942222851143612, 0.31509383525592816, 3.9064217304434257},
			{0.0002601922470449897, 20.343119687664803, 2.6605096140901954},
			{0.0002539640007975787, 23.09607220546019, 4.646426820586034},
			{0.00024355121968469386, 22.991040927041546, 3.2971750101115984},
			{0.0002185436950772619, 20.028025852408874, 3.6772882704641},
			{0.00019851316598355837, 20.448150966083446, 4.6438651416245005},
			{0.00018687821420601764, 22.78097837020426, 0.07709674566285167},
			{0.00014510040650929015, 20.658213522920732, 5.927700825832005},
			{0.0001253734464273845, 25.32386833116236, 3.176065546507983},
			{0.00011157478026304427, 23.201103483878832, 3.65234630926444},
			{0.000107080254973669, 12.29432469111593, 3.0993785250433303},
			{9.854359326561141e-05, 22.675947091785616, 5.433681315269842},
			{9.344102462657644e-05, 0.10503127841864272, 6.210273226422483},
			{8.117254096875384e-05, 25.533930887999645, 0.9500294760347362},
			{7.220477924875698e-05, 15.677464879423173, 1.618080563703852},
			{7.016176376715874e-05, 14.837214652074032, 6.2338904590001585},
			{5.968259198481108e-05, 22.570915813366973, 6.084872683379181},
			{5.3066823490158154e-05, 22.886009648622903, 0.6612082666682977},
			{5.257032704807673e-05, 25.428899609581002, 5.259676877161631},
			{5.1927326169246925e-05, 25.218837052743716, 2.0379200496814227},
			{3.544974641729625e-05, 25.113805774325073, 2.465823150847186},
			{2.77723711050867e-05, 25.63896216641829, 5.210095411667267},
			{2.6736265515380596e-05, 18.220354840381276, 1.4636686601322095},
			{2.610882977360266e-05, 17.38010461303213, 0.21816423485745193},
			{1.512712627669668e-05, 27.971789570539105, 1.2184622471117788},
			{1.3737384802015754e-05, 27.866758292120462, 1.4664578132863444},
			{1.0315003451699908e-05, 0.4201251136745709, 2.7913358016364906},
			{9.058961232886954e-06, 28.18185212737639, 5.137764001428328},
			{8.811882309278158e-06, 30.619710809915848, 1.565345181017994},
			{8.360591836071922e-06, 25.74399344483693, 1.9509927642777884},
			{7.659652038885813e-06, 30.40964825307856, 3.3818827406305036},
			{7.394497967692383e-06, 27.76172701370182, 0.25407225316086013},
			{5.953621021705029e-06, 28.076820848957748, 1.5496543644674219},
			{4.810109369291664e-06, 30.30461697465992, 2.648230155676631},
			{4.770181147288649e-06, 27.656695735283176, 0.6903355855900009},
			{4.516339206956409e-06, 19.92299457399023, 4.605771109347511},
			{3.862897595748188e-06, 30.514679531497205, 1.6074462679706554},
			{3.6410966918442938e-06, 28.286883405795034, 3.5895338551997895},
			{3.254495430895201e-06, 20.763244801339376, 5.118936097876451},
			{2.2592330432336413e-06, 23.306134762297475, 2.6080320992840034},
			{1.8241327393257611e-06, 30.199585696241275, 2.929422459166047},
			{1.4365489469527245e-06, 22.46588453494833, 0.8147900177390711},
			{1.1368866666177792e-06, 33.16260077087395, 3.1690934193742346},
			{1.0815651491030444e-06, 33.05756949245531, 1.6045881577833123},
			{1.0002487951759491e-06, 30.829773366753134, 2.074644878423919},
			{8.282950496018943e-07, 30.72474208833449, 4.121751856170059},
			{7.331714053534792e-07, 25.00877449590643, 3.44793744016127},
			{6.52256877467736e-07, 33.267632049292594, 2.2602995613562653},
			{5.814017460695932e-07, 32.84750693561802, 0.9893157268529786},
			{5.409374051537223e-07, 35.60045945341341, 1.5457294142947149},
			{4.613805522650536e-07, 35.81052201025069, 1.2775984647710887},
			{3.2837775923932334e-07, 38.35341197120879, 0.7281428703808125},
			{3.20461651779958e-07, 35.70549073183205, 1.4331389616947943},
			{3.177023386629021e-07, 35.39039689657612, 1.535048238276859},
			{3.0269064835269725e-07, 38.03831813595286, 2.0412245361727135},
			{2.8274174835030407e-07, 37.93328685753422, 1.0692958076063646},
			{2.7026028840386073e-07, 35.495428174994764, 3.036513236416339},
			{2.654575302699703e-07, 32.74247565719938, 1.1242109233511353},
			{2.5907459664178744e-07, 38.24838069279015, 0.007522809562909761},
			{2.5512633101183227e-07, 32.952538214036664, 4.656609378211005},
			{2.2668302593235442e-07, 38.14334941437151, 0.7166901077494295},
			{1.9747279801472047e-07, 35.91555328866934, 0.42802098762493407},
			{1.9207499563959324e-07, 25.849024723255575, 0.4443629422768218},
			{1.5721922535472273e-07, 33.37266332771124, 0.9549396288661438},
			{1.4654261089610083e-07, 38.458443249627436, 6.178637164624462},
			{1.4105629020867108e-07, 37.82825557911558, 1.5827184591127872},
			{1.0769108424885786e-07, 35.28536561815748, 1.7439200031208453},
			{1.0332631188595807e-07, 27.551664456864533, 1.4460630065173588},
			{9.740485770254263e-08, 40.47617681849232, 1.4725997481354185},
			{8.332256331652772e-08, 28.391914684213678, 2.628942654779372},
			{8.071905465295173e-08, 40.686239375329606, 1.0220261239584298},
			{6.622946276353014e-08, 40.79127065374825, 0.8510128286494386},
		},
	},
}

var yTable = seriesTable{
	offset: 10.016090,
	slope:  0.064073,
	terms: [3][]term{
		{
			{49.95324971600973, 2.5428899609581004, 4.526376743963572},
			{41.255060035885336, 2.7529525177953857, 3.9804336483998894},
			{31.026724157805067, 2.8579837962140284, 2.551255823487375},
			{29.57816824651932, 2.4378586825394577, 5.653957588826954},
			{27.305632097003585, 2.647921239376743, 5.617737525481804},
			{16.376268778087507, 2.2277961257021723, 5.612938832053785},
			{13.90479796189983, 2.332827404120815, 5.438296890296394},
			{4.683887908633928, 5.190811200334844, 0.4304957978042447},
			{3.9578595780405967, 4.875717365078915, 3.896687086855201},
			{3.3146425227439726, 4.980748643497558, 2.7889558101179426},
			{3.2391356701942415, 5.295842478753486, 5.476726487900463},
			{2.8397759662841295, 5.085779921916201, 4.463783399723274},
			{2.053216067617375, 2.963015074632671, 1.4348574881897058},
			{1.3426333716138983, 2.1227648472835297, 0.2971841694775982},
			{1.250663526262523, 4.770686086660272, 5.406278552478512},
			{1.1697773568898027, 7.628669882874301, 4.742051110834296},
			{0.7418120712315929, 5.400873757172129, 3.032917773263483},
			{0.6912091222578272, 7.418607326037016, 3.6901751159901655},
			{0.4471263686098236, 7.313576047618373, 4.518056500231848},
			{0.3746208298236698, 7.8387324397115865, 5.659218134956646},
			{0.29254136392387764, 7.733701161292944, 0.21300991455952303},
			{0.22177525204539297, 7.523638604455658, 4.240719784006993},
			{0.1904929471425473, 10.066528565413758, 2.417718486040338},
			{0.1698643607856733, 10.381622400669688, 0.46745523910779563},
			{0.15960415096928077, 10.276591122251045, 0.8048971202434987},
			{0.10760317852778836, 10.48665367908833, 6.269075084933912},
			{0.10474729546127307, 10.171559843832402, 0.11807576252931139},
			{0.09622479691586351, 7.94376371813023, 6.053743056192683},
			{0.07235775250084694, 5.5059050355907715, 1.4263972362927797},
			{0.06621512902299057, 12.714449804790501, 4.755861347384627},
			{0.06274308310492184, 12.924512361627787, 3.7077522737004003},
			{0.06194129149097982, 12.609418526371858, 4.9211067442527865},
			{0.06029274988518396, 4.66565480824163, 0.6206588051455653},
			{0.05932688384817872, 12.504387247953215, 5.430125011025357},
			{0.056194513733313266, 9.961497286995115, 3.1158199892036067},
			{0.043088111594262325, 13.029543640046429, 2.9026250039200527},
			{0.03969663474831379, 9.856466008576474, 1.5361099980916535},
			{0.039209767921618024, 12.819481083209144, 3.7529446877258406},
			{0.03479333265198246, 12.399355969534573, 5.963170128939519},
			{0.023279680161909833, 7.20854476919973, 5.381580125250548},
			{0.016615011803904654, 15.047277208911316, 4.758368364573045},
			{0.016397879058127375, 15.15230848732996, 4.211488522328801},
			{0.013874766534690549, 15.362371044167245, 2.2256240573697412},
			{0.010881701923263884, 8.048794996548873, 6.068449619654636},
			{0.008249328639426484, 14.942245930492675, 5.234710386724854},
			{0.0068631105693028865, 15.257339765748602, 4.516195731593325},
			{0.00614591346772296, 10.591684957506972, 5.362037113104171},
			{0.005465130894898025, 15.57243360100453, 2.839919052589467},
			{0.004535860723841267, 0.0, 4.71238898038469},
			{0.003409705238739846, 9.75143473015783, 2.777734227424354},
			{0.002960155061531414, 15.467402322585889, 1.4201750513276712},
			{0.0028371803525317706, 17.800229726706704, 0.10756132296613698},
			{0.002809963341428552, 13.134574918465072, 1.894215201729609},
			{0.0024102558161785788, 0.21006255683728545, 0.5624355787583839},
			{0.0022558185272053065, 12.29432469111593, 0.5784854245803716},
			{0.001810642014907437, 17.485135891450774, 1.1330410352611056},
			{0.0017881160456850822, 0.31509383525592816, 5.825880094712198},
			{0.0017629159237847597, 17.590167169869417, 0.20753114024453326},
			{0.001447504164664184, 18.115323561962633, 4.21281913979271},
			{0.0011639615012320882, 20.343119687664803, 0.1334952083923576},
			{0.00096410089586424, 18.01029228354399, 5.430400075034895},
			{0.0008246648060787635, 0.10503127841864272, 1.5655879493425227},
			{0.00080330245910689, 17.905261005125347, 3.3048160968637985},
			{0.0007031114419772373, 20.55318224450209, 6.148896363888223},
			{0.0005106562474240845, 17.69519844828806, 2.590353760685234},
			{0.0004897706481595987, 14.837214652074032, 6.111907464697587},
			{0.000486168779008821, 15.677464879423173, 1.7153208552080952},
			{0.0004340513943424568, 20.028025852408874, 1.196633286606495},
			{0.0003827120711602184, 20.133057130827517, 0.3975535146994264},
			{0.0003782195827167996, 20.658213522920732, 5.047861957604701},
			{0.00037347562901332294, 20.23808840924616, 0.7379049910260601},
			{0.00027124258887665733, 20.448150966083446, 0.444498435683226},
			{0.0002028894690681477, 22.78097837020426, 4.697446973474869},
			{0.0001999574091912578, 0.4201251136745709, 4.796208086528497},
			{0.00013072283965897012, 22.886009648622903, 0.38497510479400415},
			{0.00012354571333971016, 17.38010461303213, 2.123691306985999},
			{0.00011241302596517933, 18.220354840381276, 3.1268862055675344},
			{0.00010795801313560125, 22.675947091785616, 5.117166310754767},
			{8.492862978041277e-05, 22.991040927041546, 2.2660996095951282},
			{8.10061960770605e-05, 23.09607220546019, 1.2405530617445073},
			{4.185110765575948e-05, 25.32386833116236, 5.4284175962766295},
			{4.135904989156605e-05, 25.428899609581002, 0.2567157556920765},
			{3.806306949614493e-05, 22.570915813366973, 3.6668814440302153},
			{3.3077015108809246e-05, 25.533930887999645, 3.568419602675618},
			{3.0337444606070924e-05, 19.92299457399023, 2.320012770085551},
			{2.561092621377212e-05, 25.74399344483693, 4.538358611220068},
			{2.525174964071141e-05, 25.218837052743716, 5.691888400361469},
			{2.240181126899115e-05, 20.763244801339376, 3.802583823817482},
			{2.1207395675577706e-05, 27.866758292120462, 0.010752541173674236},
			{2.0003788504867246e-05, 25.63896216641829, 0.08353837857491422},
			{1.780507558463309e-05, 27.971789570539105, 0.4853660521060018},
			{1.65426523067048e-05, 27.76172701370182, 0.18087127807560233},
			{1.3814523836980378e-05, 25.113805774325073, 5.493946498327565},
			{1.2010465531048245e-05, 23.201103483878832, 2.1043495446636307},
			{8.82432977893528e-06, 27.656695735283176, 0.3939770764047164},
			{6.068111159076156e-06, 30.30461697465992, 2.516051690248893},
			{5.393359558337351e-06, 30.514679531497205, 2.301405939501796},
			{4.823794876961362e-06, 28.286883405795034, 3.5874349312188163},
			{4.434358845833874e-06, 30.199585696241275, 3.226896916581691},
			{4.0996296382149344e-06, 28.076820848957748, 4.350039484402118},
			{3.7869059533933587e-06, 22.46588453494833, 4.3451262386118295},
			{2.794624952916897e-06, 28.18185212737639, 5.102290143413532},
			{2.784725278795035e-06, 33.16260077087395, 4.120010535160911},
			{2.372600150917753e-06, 32.952538214036664, 5.7365230339435085},
			{1.83411938779093e-06, 30.40964825307856, 2.9423829811081292},
			{1.796540046906188e-06, 33.267632049292594, 3.6744186906459966},
			{1.567743798829797e-06, 32.84750693561802, 6.037072217126343},
			{1.5639293406930664e-06, 25.849024723255575, 3.227885291305288},
			{1.4168363263649e-06, 30.829773366753134, 0.043432685363054245},
			{1.4071719201620559e-06, 23.306134762297475, 1.5852546231717826},
			{1.3122499116936433e-06, 30.72474208833449, 0.15032211389555367},
			{1.1707177097594362e-06, 33.37266332771124, 3.5599395532143863},
			{9.409336502645415e-07, 33.05756949245531, 4.753842112502297},
			{9.300904655329374e-07, 32.74247565719938, 6.052021665956873},
			{7.340292524349296e-07, 25.00877449590643, 0.29613389579101373},
			{6.507229078548945e-07, 35.60045945341341, 2.4881730242847078},
			{5.906342833081239e-07, 27.551664456864533, 1.2799498846366542},
			{4.5069970858203406e-07, 35.81052201025069, 2.2523288900544496},
			{4.0261698701913486e-07, 28.391914684213678, 2.3465916143535743},
			{3.093839260084005e-07, 35.39039689657612, 2.401073258876638},
			{2.968837258971941e-07, 35.28536561815748, 3.788597468571429},
			{2.627149023557145e-07, 30.619710809915848, 0.6035873102248359},
			{2.5404599075483965e-07, 30.094554417822632, 4.019333832002664},
			{2.5204328841453696e-07, 35.91555328866934, 1.3640638956350162},
			{2.3191474454326594e-07, 38.14334941437151, 2.32486519650999},
			{1.6243650754751283e-07, 35.70549073183205, 2.3757201361992513},
			{1.4781191537709519e-07, 30.934804645171777, 5.5760361518756465},
			{1.4399589332005804e-07, 38.35341197120879, 2.234127591814497},
			{1.1724353703759602e-07, 35.495428174994764, 5.360696131220447},
			{1.1346425779197429e-07, 37.93328685753422, 2.4591935749216707},
			{9.613896376985301e-08, 38.03831813595286, 2.189565321783129},
			{9.246185601435003e-08, 38.24838069279015, 2.092268129198718},
			{8.342826832803783e-08, 37.82825557911558, 3.3143261254252563},
			{7.603129218793495e-08, 38.458443249627436, 1.487125642246879},
			{7.529379568773297e-08, 32.637444378780735, 0.9765190609304738},
			{7.026630779375319e-08, 33.47769460612988, 2.515558835462976},
			{5.3708102398815345e-08, 40.47617681849232, 2.471175401982005},
			{5.262041813847332e-08, 40.686239375329606, 2.6962871807584334},
		},
		{
			{36.13865240708644, 2.8579837962140284, 0.9761871408410396},
			{34.70906422362794, 2.7529525177953857, 4.5027921110017415},
			{32.668253567041866, 2.332827404120815, 2.5759015667185103},
			{29.309129090741397, 2.5428899609581004, 2.536572392227098},
			{19.09310848841246, 2.2277961257021723, 0.8948644860346403},
			{11.188938845377269, 2.647921239376743, 1.3415332638334712},
			{5.9388110800292075, 2.4378586825394577, 0.4617689058285536},
			{4.41479437427332, 5.295842478753486, 4.344808900353911},
			{3.4819542468753464, 4.980748643497558, 0.9523890299919149},
			{2.916299052248194, 4.875717365078915, 4.938248798996307},
			{2.193751994131019, 5.190811200334844, 2.134535991834992},
			{1.945825775484817, 2.963015074632671, 6.142880202335951},
			{1.8377852531579901, 5.085779921916201, 2.635499214150896},
			{1.4441395827852601, 4.770686086660272, 0.7030298837640105},
			{1.2899737502457078, 2.1227648472835297, 1.8661123000726607},
			{0.8624935830763358, 5.400873757172129, 1.4353106485487899},
			{0.6978949662066438, 7.523638604455658, 1.0410604829091903},
			{0.5824330723857296, 7.733701161292944, 1.6848790645058325},
			{0.5397945229257365, 7.8387324397115865, 3.625672085758453},
			{0.5234532522801558, 7.313576047618373, 6.089513295368269},
			{0.2880720921401139, 7.628669882874301, 2.909204604559048},
			{0.28426235813570117, 7.418607326037016, 1.1399655231335988},
			{0.16324533104370653, 9.961497286995115, 5.008391668170977},
			{0.13794959943904747, 10.381622400669688, 3.5936721552783144},
			{0.12569376944805427, 10.48665367908833, 4.7046153058750235},
			{0.11454945036616522, 7.94376371813023, 4.476115138399977},
			{0.07068408984672987, 5.5059050355907715, 6.116914380083937},
			{0.05686828565136468, 10.171559843832402, 5.876868487092631},
			{0.05622575877340491, 4.66565480824163, 2.233424800589283},
			{0.05001212456639621, 13.029543640046429, 1.3351697683397752},
			{0.04988792291948998, 10.276591122251045, 3.2507429294700705},
			{0.04705146152258677, 9.856466008576474, 3.086942281883281},
			{0.04580785724947888, 10.066528565413758, 4.626253927512858},
			{0.0424136076475966, 12.504387247953215, 2.2363962879270787},
			{0.040403116896739776, 12.399355969534573, 1.2435702320681647},
			{0.03650952987724434, 12.819481083209144, 0.4068113503637947},
			{0.032775545618091824, 12.924512361627787, 6.108754260108571},
			{0.021542627676854154, 7.20854476919973, 0.650704257733613},
			{0.017124752975867394, 15.467402322585889, 5.5792733626200235},
			{0.013143581972321492, 12.609418526371858, 3.714593025255692},
			{0.01201185726812924, 15.047277208911316, 1.22467391973727},
			{0.010881964920692584, 8.048794996548873, 4.54332868439005},
			{0.010008736911802669, 12.714449804790501, 1.3762821350950665},
			{0.009583797408054253, 14.942245930492675, 0.5112043154252323},
			{0.007842852510909576, 0.0, 4.71238898038469},
			{0.006433142416246944, 15.57243360100453, 1.2779912981741919},
			{0.005870142273156918, 15.15230848732996, 2.674159084507504},
			{0.005747589397722367, 10.591684957506972, 3.8004551964339783},
			{0.003285506611438341, 9.75143473015783, 4.368153795491059},
			{0.0031798107272452093, 15.362371044167245, 2.69057401961434},
			{0.002665262427285619, 13.134574918465072, 0.3241152367211178},
			{0.00251722756350343, 15.257339765748602, 6.033436597440265},
			{0.0024928697701959886, 18.01029228354399, 0.40833709816470054},
			{0.0021583203753233046, 17.590167169869417, 4.70292222218081},
			{0.0021369976718359387, 12.29432469111593, 2.1420704884197725},
			{0.0021121954200956803, 17.485135891450774, 2.705452063574657},
			{0.0019195155722041965, 17.69519844828806, 4.715286468876741},
			{0.0019085988932730235, 0.31509383525592816, 4.255229354975631},
			{0.0016900569364147295, 18.115323561962633, 2.6389031367991893},
			{0.0014866360743012487, 17.800229726706704, 0.2949439985705448},
			{0.0011035815082067698, 0.21006255683728545, 2.190737463696789},
			{0.0010178451177474369, 0.10503127841864272, 3.1388322118120584},
			{0.0006191036933625193, 17.905261005125347, 4.6194414863837565},
			{0.0005804534908438296, 20.133057130827517, 4.744389678743143},
			{0.0005074025939655673, 20.028025852408874, 2.7652248614995045},
			{0.0004686617247708158, 15.677464879423173, 0.1366712802019355},
			{0.0004605003477845133, 14.837214652074032, 1.3912976916142816},
			{0.00043683529002840917, 20.658213522920732, 3.4788942046826357},
			{0.0003738609102070858, 20.448150966083446, 2.939604975307144},
			{0.00024142161434232928, 22.675947091785616, 0.6534068036577338},
			{0.00020541383304885876, 0.4201251136745709, 3.224997793107755},
			{0.00015367267397554984, 20.343119687664803, 3.9542292059709423},
			{0.00013283696588135016, 23.09607220546019, 5.750601886880022},
			{0.0001191937515742802, 22.886009648622903, 2.704640423917441},
			{0.00011721812516547632, 17.38010461303213, 3.6906043816918914},
			{0.0001125599414464331, 20.55318224450209, 6.191340505454027},
			{0.00010764396409546446, 18.220354840381276, 1.5542745865713148},
			{8.742900093325822e-05, 22.78097837020426, 1.8158479274802126},
			{7.028682201534778e-05, 22.991040927041546, 4.416735737921914},
			{5.267867357593225e-05, 25.63896216641829, 0.3606707555290611},
			{4.6237060109816075e-05, 22.570915813366973, 5.206603843250357},
			{4.108967304258241e-05, 25.218837052743716, 1.825640302353492},
			{3.191019677773713e-05, 20.23808840924616, 3.0101128115831526},
			{2.9976771201040795e-05, 25.74399344483693, 2.9549192226840844},
			{2.881042284735508e-05, 19.92299457399023, 3.89879165166755},
			{2.4092004202037107e-05, 25.428899609581002, 1.047185403665309},
			{2.3705392030313086e-05, 25.533930887999645, 2.9815290443789033},
			{2.1186536314614528e-05, 20.763244801339376, 2.213329289734604},
			{1.7549409622975043e-05, 25.32386833116236, 4.880744623397898},
			{1.6444868721166557e-05, 27.76172701370182, 2.7860625086706445},
			{1.5855267678595374e-05, 25.113805774325073, 0.7527891701152442},
			{1.5172719501242932e-05, 23.201103483878832, 0.6151916364791337},
			{1.1353036859675744e-05, 28.18185212737639, 5.972569774026322},
			{1.0418172343422681e-05, 27.866758292120462, 4.270110138835475},
			{1.0158534239580405e-05, 27.656695735283176, 1.9721358911579394},
			{7.687035295392422e-06, 30.40964825307856, 6.220097763864578},
			{5.699885034060663e-06, 28.286883405795034, 1.9856989253277753},
			{5.2620922028602995e-06, 30.199585696241275, 4.783439621254094},
			{4.912768417207722e-06, 30.30461697465992, 0.09853586352212707},
			{4.79639229841321e-06, 28.076820848957748, 2.8292314105411203},
			{4.780758896924246e-06, 30.619710809915848, 1.0989513562616613},
			{3.910025971913368e-06, 27.971789570539105, 4.16815147480495},
			{3.647220793916802e-06, 22.46588453494833, 5.906624113996649},
			{2.551099127580238e-06, 33.267632049292594, 0.6734365591038942},
			{2.2977714903935654e-06, 30.72474208833449, 3.2412887188952286},
			{2.1349102495348644e-06, 32.84750693561802, 2.3377344186167988},
			{1.912687577568802e-06, 30.514679531497205, 1.2247136901923008},
			{1.5738585560398335e-06, 30.829773366753134, 4.789984356074102},
			{1.4780903019311414e-06, 25.849024723255575, 1.6402075803080702},
			{1.3901207567070321e-06, 33.37266332771124, 1.9796274330747845},
			{1.3498619403333507e-06, 23.306134762297475, 0.034712108700566964},
			{1.0346282067812295e-06, 32.74247565719938, 1.3332626034442374},
			{8.975397854636944e-07, 33.05756949245531, 1.3586955338904985},
			{6.905876223292644e-07, 25.00877449590643, 1.8764725576090757},
			{5.61315211601901e-07, 27.551664456864533, 2.8324564187341337},
			{4.888147016953212e-07, 35.39039689657612, 1.4041102491295336},
			{4.507867732171702e-07, 35.495428174994764, 5.92615418292238},
			{3.8716366390047547e-07, 28.391914684213678, 0.7801500141812764},
			{3.787893695366333e-07, 32.952538214036664, 5.525080544111314},
			{3.5821123330074466e-07, 35.28536561815748, 5.304723937058497},
			{3.176068993967187e-07, 35.70549073183205, 5.466862120471979},
			{3.142182729372208e-07, 33.16260077087395, 0.5857812096732284},
			{2.972715721279994e-07, 35.91555328866934, 6.1348225131984355},
			{2.6262032101112494e-07, 35.60045945341341, 2.6302100188052355},
			{2.3640801328320033e-07, 30.094554417822632, 5.580450317910183},
			{1.7642538023868927e-07, 35.81052201025069, 5.6613998888640795},
			{1.4469943319983995e-07, 30.934804645171777, 4.000579547108183},
			{1.1463983170579025e-07, 38.24838069279015, 5.536849174152075},
			{1.105029162716792e-07, 37.93328685753422, 0.5696878327405875},
			{1.0640443960255554e-07, 37.82825557911558, 4.8294584954211},
			{9.125330652064914e-08, 38.458443249627436, 0.0022114168663950624},
			{8.67229360733841e-08, 38.35341197120879, 5.8149558738117335},
			{7.326097795570641e-08, 38.14334941437151, 4.6665400144329165},
			{7.322243271603844e-08, 32.637444378780735, 2.5460672661585906},
			{6.594940937955188e-08, 33.47769460612988, 0.9549402886046502},
			{5.281895253072969e-08, 38.03831813595286, 5.998984757834938},
		},
		{
			{60.443211170015694, 2.7529525177953857, 0.6601991166581819},
			{37.85618661141489, 2.4378586825394577, 2.6329978935989398},
			{34.09336603088877, 2.647921239376743, 3.233337065000746},
			{32.16321708571382, 2.5428899609581004, 2.114270311592069},
			{24.968033681457037, 2.8579837962140284, 5.6507686901402305},
			{21.03846456008586, 2.332827404120815, 1.8250172015457278},
			{14.601532924374073, 2.2277961257021723, 2.431455255711848},
			{6.6881155805473, 5.190811200334844, 3.6075142512482996},
			{4.458205239498486, 4.875717365078915, 0.8513630229554972},
			{4.187167272214659, 4.980748643497558, 5.748392650828016},
			{2.831401526446325, 5.295842478753486, 2.155562316654107},
			{1.3740892663364082, 5.085779921916201, 2.5179418334708914},
			{1.06628179679596, 7.418607326037016, 0.4952640826426406},
			{0.8556658393482685, 4.770686086660272, 2.449230749252118},
			{0.6980343561783044, 5.400873757172129, 5.83726164485563},
			{0.522183307301811, 2.963015074632671, 4.567134729719868},
			{0.4754530224677549, 7.628669882874301, 1.9159622793079198},
			{0.4646244063564274, 7.733701161292944, 3.0020172445739624},
			{0.4294915361728633, 7.8387324397115865, 2.738435406664468},
			{0.3516587155174459, 2.1227648472835297, 3.435159305932763},
			{0.34377203054595085, 7.523638604455658, 1.9459724985276647},
			{0.32751548318400714, 7.313576047618373, 1.3124784287436213},
			{0.3176822234287983, 10.066528565413758, 5.399261931949106},
			{0.24261690687151774, 10.381622400669688, 3.8796435147180808},
			{0.23452764650782798, 10.276591122251045, 3.371683116476382},
			{0.09092303631663598, 10.171559843832402, 4.300685191736547},
			{0.08997386549798918, 7.94376371813023, 3.5006845349148077},
			{0.08896976383549629, 12.924512361627787, 0.6832162351020747},
			{0.08157911671934207, 10.48665367908833, 3.1872103507966743},
			{0.07706780117899906, 12.504387247953215, 2.0999120551635553},
			{0.059086173420818074, 12.609418526371858, 2.0585710772925507},
			{0.03742928774471371, 12.819481083209144, 0.15551590403430543},
			{0.0365680279839188, 9.856466008576474, 4.758274048262548},
			{0.03430096061833536, 13.029543640046429, 6.059748102598913},
			{0.028145836220558485, 12.714449804790501, 1.5810551706619702},
			{0.027614196687926373, 12.399355969534573, 2.7524547247547013},
			{0.021138800710944615, 15.362371044167245, 5.236615922940951},
			{0.02055748098622603, 15.047277208911316, 1.4121290548052805},
			{0.019667804532707757, 5.5059050355907715, 4.52156240387385},
			{0.01883618897169059, 15.15230848732996, 1.209826602033457},
			{0.0148198868075336, 4.66565480824163, 3.8564691791058974},
			{0.00774448108067816, 9.961497286995115, 4.164991013304493},
			{0.00630700189358432, 14.942245930492675, 2.012580059300715},
			{0.005609174295157616, 7.20854476919973, 2.19752236078507},
			{0.0051232378898204535, 15.57243360100453, 5.944873775779927},
			{0.0031576874291040853, 17.590167169869417, 3.2942295151757652},
			{0.0031127578990342037, 8.048794996548873, 3.023746532543008},
			{0.0030424769775330733, 0.21006255683728545, 3.7055609731266865},
			{0.002995926921938233, 15.257339765748602, 3.6915111802971876},
			{0.002908115083622024, 17.69519844828806, 5.491275545156013},
			{0.0024886965590203048, 15.467402322585889, 0.597363158365452},
			{0.002121223993860887, 17.800229726706704, 3.692706773609133},
			{0.0019023073421103919, 18.01029228354399, 2.2696768382581207},
			{0.0016771482775797641, 0.31509383525592816, 2.687529178452739},
			{0.0015177484573426676, 10.591684957506972, 2.2412583762887817},
			{0.00148112389353202, 17.485135891450774, 4.257137619917065},
			{0.0012584936338576275, 18.115323561962633, 1.0420562518044323},
			{0.000953900679646713, 20.55318224450209, 3.1025894968817576},
			{0.0009378286965880802, 17.905261005125347, 6.1974191487623855},
			{0.0009002759337480438, 9.75143473015783, 5.962336689037671},
			{0.0008755526906121577, 20.23808840924616, 4.893461629664796},
			{0.0007163571353658204, 13.134574918465072, 5.037290958936723},
			{0.0007128923837661689, 20.133057130827517, 3.255276547138855},
			{0.0006729311103753834, 20.343119687664803, 3.1495527633995604},
			{0.00059417170086839, 20.448150966083446, 3.3309979929404743},
			{0.0005731496403965392, 12.29432469111593, 3.70460637666368},
			{0.0004456472121722753, 0.10503127841864272, 4.6563114854622665},
			{0.0004193689227631951, 0.0, 4.71238898038469},
			{0.00035973404227931363, 20.028025852408874, 4.375893224153521},
			{0.00028524142299729554, 20.658213522920732, 1.8202046612351375},
			{0.0002823349060773667, 22.78097837020426, 1.109491840382359},
			{0.00017744331490741636, 22.991040927041546, 4.63447816404848},
			{0.00013284947545530576, 22.886009648622903, 3.2851329210390343},
			{0.00012832903958427458, 15.677464879423173, 4.839884093111513},
			{0.0001223792986526545, 14.837214652074032, 2.9524316013072207},
			{8.952769671064354e-05, 22.675947091785616, 1.5514305459382685},
			{7.585898183390845e-05, 23.09607220546019, 4.470101716992124},
			{6.172637749192239e-05, 0.4201251136745709, 1.6532292721972421},
			{4.836666209369661e-05, 25.63896216641829, 2.9528025969157863},
			{4.129886508893036e-05, 25.533930887999645, 0.3146404002700479},
			{3.871969628762755e-05, 22.570915813366973, 0.3030398155010306},
			{3.796673970310225e-05, 25.32386833116236, 2.2592977294489645},
			{3.551810164407459e-05, 25.218837052743716, 1.8706203067852354},
			{3.148768741909169e-05, 17.38010461303213, 5.256753783969979},
			{2.942483895457828e-05, 25.428899609581002, 4.0938086324950484},
			{2.9240232977746725e-05, 18.220354840381276, 6.264844804483345},
			{2.1882615399623372e-05, 27.866758292120462, 3.628811638761263},
			{2.1402614770622365e-05, 27.76172701370182, 2.8565503436585615},
			{1.9825888221495714e-05, 25.74399344483693, 1.2631680639668958},
			{1.3903153224063153e-05, 23.201103483878832, 5.594166693992958},
			{9.894986521221805e-06, 25.113805774325073, 2.339475600136434},
			{8.613830485040237e-06, 30.30461697465992, 5.648776803861482},
			{7.747568353732603e-06, 19.92299457399023, 5.479630641177807},
			{7.037432659973302e-06, 27.656695735283176, 3.482717263125014},
			{6.427980223650025e-06, 27.971789570539105, 3.5672231415146225},
			{6.068063610504448e-06, 30.40964825307856, 0.11061668097549078},
			{5.67842146576658e-06, 20.763244801339376, 0.6200680574780485},
			{5.57130415050408e-06, 30.514679531497205, 6.270439215590634},
			{5.3869315411441955e-06, 28.18185212737639, 2.37989884676582},
			{4.380790275618122e-06, 28.286883405795034, 0.30069870450677094},
			{3.603487423895811e-06, 28.076820848957748, 3.625219188337489},
			{3.5066035360305103e-06, 33.16260077087395, 0.742151122817557},
			{3.4219710274700356e-06, 30.199585696241275, 6.247107158390958},
			{3.149990682472137e-06, 30.619710809915848, 3.4299477559820564},
			{3.067800479095434e-06, 32.952538214036664, 2.708773872016116},
			{2.83590902275651e-06, 30.72474208833449, 3.593637508643706},
			{2.047513808141251e-06, 32.84750693561802, 2.1981818547958154},
			{1.8308386276732361e-06, 33.267632049292594, 1.1177517232346301},
			{1.367498595179522e-06, 30.829773366753134, 3.395485945820558},
			{9.972267487377807e-07, 22.46588453494833, 1.1854384623207743},
			{9.225717567449723e-07, 33.37266332771124, 0.39473941245032673},
			{7.773930335684794e-07, 32.74247565719938, 3.006707110886195},
			{7.12116127161168e-07, 35.60045945341341, 5.760847057856783},
			{6.085081731529703e-07, 33.05756949245531, 0.674404558905741},
			{5.528645762936437e-07, 35.81052201025069, 5.189764416113926},
			{5.245981822946325e-07, 35.39039689657612, 6.1133833377429},
			{3.960963096673633e-07, 25.849024723255575, 0.049886646173783765},
			{3.6721150701089854e-07, 23.306134762297475, 4.773608107586898},
			{3.52545985925908e-07, 35.495428174994764, 1.9686846725240637},
			{2.3049012648863234e-07, 35.91555328866934, 4.518720713357028},
			{2.254956074266214e-07, 38.14334941437151, 5.4897841849196025},
			{1.9721026784919587e-07, 35.28536561815748, 0.5211056489222092},
			{1.8543153041599e-07, 35.70549073183205, 4.827526702876344},
			{1.839733414791406e-07, 25.00877449590643, 3.4557924212050293},
			{1.6287440204630897e-07, 38.35341197120879, 5.217343945635041},
			{1.547710671276556e-07, 37.93328685753422, 6.009568192176516},
			{1.50982006784334e-07, 27.551664456864533, 4.379648890609434},
			{1.272616622084483e-07, 38.24838069279015, 5.169381907284538},
			{1.0583852639619758e-07, 28.391914684213678, 5.501475312687384},
			{7.84915335208823e-08, 40.47617681849232, 6.0344955426857325},
			{7.341012169959959e-08, 38.458443249627436, 4.592976621108761},
			{6.237606340243461e-08, 40.686239375329606, 5.654365562246687},
			{6.206014754128627e-08, 30.094554417822632, 0.8589422387059058},
			{5.993563815723802e-08, 38.03831813595286, 5.916193173465801},
			{5.9289710535097974e-08, 37.82825557911558, 6.073425883702534},
		},
	},
}

var zTable = seriesTable{
	offset: -3.947474,
	slope:  -0.042746,
	terms: [3][]term{
		{
			{9.40768083296584, 2.5428899609581004, 2.39225497498525},
			{4.40162666840781, 2.4378586825394577, 0.10086025310808423},
			{1.9466303504218896, 2.7529525177953857, 3.68774367319433},
			{1.7450689420290832, 2.2277961257021723, 4.993426371897854},
			{1.4864359327229162, 2.647921239376743, 5.816213982461754},
			{1.1905199944264067, 2.8579837962140284, 1.6665122108726722},
			{1.075680440272189, 5.085779921916201, 3.2109735827113144},
			{1.03864998954368, 5.295842478753486, 3.0309291282218784},
			{1.0051591777217308, 2.332827404120815, 2.5735782192361265},
			{0.8728714157695829, 5.190811200334844, 3.9721997428319042},
			{0.8364352103048002, 4.980748643497558, 5.423803712660648},
			{0.6198790199573282, 5.400873757172129, 2.2780772718493214},
			{0.45077446721277675, 4.875717365078915, 5.462833252285409},
			{0.43126239813691347, 4.770686086660272, 5.285411001483476},
			{0.26603596811081337, 7.523638604455658, 0.3401230282339128},
			{0.23461533097361995, 7.733701161292944, 5.191587991507598},
			{0.22114131923140656, 7.8387324397115865, 4.088550365574392},
			{0.16250490984861493, 7.313576047618373, 5.7073497483682125},
			{0.1241359559130992, 2.1227648472835297, 6.0806039549616155},
			{0.09613761326516479, 7.628669882874301, 4.130073902640728},
			{0.09354911953678172, 7.94376371813023, 2.970150406575781},
			{0.08705482319206366, 2.963015074632671, 0.3684165105035204},
			{0.07510687184072162, 10.276591122251045, 5.782793559161572},
			{0.0656419802150859, 10.066528565413758, 1.1933508030746496},
			{0.05283995382525267, 10.381622400669688, 5.329869800815356},
			{0.04267051254222866, 9.961497286995115, 1.654636966444534},
			{0.03968824852585337, 5.5059050355907715, 1.3156481237265973},
			{0.035462492229809885, 4.66565480824163, 6.233197560835554},
			{0.029929062091891546, 10.48665367908833, 5.101908849346226},
			{0.02820090271963433, 12.714449804790501, 3.7895668827493703},
			{0.024376917802871156, 7.418607326037016, 4.6741168189354045},
			{0.020309007161795213, 12.924512361627787, 3.757121802072488},
			{0.018250643746293854, 10.171559843832402, 1.1986815835441458},
			{0.016335897852428036, 9.856466008576474, 1.6256003604590215},
			{0.013992766298739771, 12.609418526371858, 4.7710897517601},
			{0.012227720004680413, 7.20854476919973, 0.5023531807226481},
			{0.011536358881469156, 12.819481083209144, 4.211960805354938},
			{0.010201605109990745, 13.029543640046429, 2.7638798258774924},
			{0.007183821571353152, 12.504387247953215, 4.815487492875843},
			{0.006893584298220581, 12.399355969534573, 5.200749539926034},
			{0.0060077481896543255, 8.048794996548873, 1.851290303278465},
			{0.0037961037863017597, 15.257339765748602, 3.2988402418442266},
			{0.0034751491848949456, 15.362371044167245, 1.6944629804119073},
			{0.002651771350505364, 15.047277208911316, 4.205974645230961},
			{0.0023325436583919953, 15.57243360100453, 2.3508865754318995},
			{0.001986189377911055, 14.942245930492675, 5.114847220380409},
			{0.0019456704472063386, 10.591684957506972, 4.252882468884161},
			{0.0019421164577857475, 0.0, 1.5707963267948966},
			{0.0016072188282965946, 15.467402322585889, 2.703873475601694},
			{0.001348356796230322, 15.15230848732996, 3.075329138168306},
			{0.0012513002658841971, 9.75143473015783, 2.3648281898222185},
			{0.0009963707297652468, 17.800229726706704, 3.7568700516950533},
			{0.0005908056560467514, 17.590167169869417, 3.500601486870929},
			{0.000562712309286045, 13.134574918465072, 1.6179011263478604},
			{0.0004908456313544741, 12.29432469111593, 0.007052016600892304},
			{0.0004197390537602073, 17.485135891450774, 4.696390602367062},
			{0.00038688700505071656, 0.21006255683728545, 2.9291451829156854},
			{0.00036458799028154815, 17.69519844828806, 3.200675495030115},
			{0.00028755917674203935, 0.31509383525592816, 1.9569216519807},
			{0.00021619401582220535, 20.23808840924616, 3.3392673044710603},
			{0.00021187103053077014, 20.343119687664803, 3.6063198967527694},
			{0.00017606871537287518, 17.905261005125347, 1.618905895643139},
			{0.0001669007498203329, 20.133057130827517, 3.566327655089489},
			{0.00016647414412542755, 15.677464879423173, 1.3333012781022722},
			{0.00014341905716481695, 20.448150966083446, 1.5163855810063995},
			{0.00013504886108015328, 0.10503127841864272, 3.8707821759389187},
			{0.00013339179005078836, 14.837214652074032, 6.169434832369961},
			{0.0001104718849110184, 18.01029228354399, 3.5141238361895386},
			{9.496056970964177e-05, 20.028025852408874, 4.141847209020839},
			{7.537634984314622e-05, 20.55318224450209, 1.2796284323548401},
			{7.409486871717633e-05, 22.78097837020426, 2.890763378859777},
			{5.777883547062446e-05, 20.658213522920732, 0.593571370082949},
			{5.1856951345622105e-05, 23.09607220546019, 6.057429554825934},
			{4.2586225767832166e-05, 18.115323561962633, 0.48483046061606044},
			{3.791763751633703e-05, 22.991040927041546, 0.9149910292359441},
			{3.385794581443378e-05, 0.4201251136745709, 1.0291124228732418},
			{3.2472174334189984e-05, 22.675947091785616, 2.8486064426810964},
			{3.0384807811484702e-05, 23.201103483878832, 5.3040160070318345},
			{3.0099664378816272e-05, 22.570915813366973, 2.2106942203839663},
			{2.7753388564121705e-05, 22.886009648622903, 4.139041297687816},
			{2.3146163847746797e-05, 17.38010461303213, 5.816539103511118},
			{2.0039058543868615e-05, 25.32386833116236, 3.1119330845265223},
			{1.435792694535763e-05, 25.533930887999645, 1.5130296320614294},
			{8.175261638813556e-06, 25.218837052743716, 3.708895386962292},
			{7.411201324990575e-06, 27.971789570539105, 5.490520882596413},
			{6.475342217400065e-06, 18.220354840381276, 6.019340049013978},
			{6.3241491313404375e-06, 25.74399344483693, 2.140905495781446},
			{6.133191347428469e-06, 25.428899609581002, 4.276846260622106},
			{6.097080592415429e-06, 27.76172701370182, 5.789413647974429},
			{5.604906303037297e-06, 27.866758292120462, 5.856179154396818},
			{5.541744923101656e-06, 25.113805774325073, 2.4398678395550153},
			{5.387566471177111e-06, 19.92299457399023, 5.023280164323694},
			{4.7843357295534805e-06, 27.656695735283176, 6.101812434387923},
			{4.45384853825766e-06, 20.763244801339376, 5.9433256085742325},
			{4.171378420283694e-06, 28.18185212737639, 3.63620689381903},
			{3.0190049516863555e-06, 28.286883405795034, 2.6542330910706142},
			{2.4563279050045155e-06, 22.46588453494833, 3.017176325754489},
			{2.0808966140513485e-06, 28.076820848957748, 3.786134695040947},
			{2.0141254360900433e-06, 23.306134762297475, 4.397445302148532},
			{1.9122236598952313e-06, 25.63896216641829, 4.96492119113541},
			{1.5485400546394954e-06, 30.40964825307856, 3.862482027043154},
			{8.63099628981187e-07, 30.619710809915848, 2.2252456318551777},
			{7.448019772535748e-07, 33.16260077087395, 1.7779142904538001},
			{6.388711085957291e-07, 33.267632049292594, 1.3902747444069097},
			{5.425165078640349e-07, 32.952538214036664, 3.291780513632862},
			{5.267924312202484e-07, 30.72474208833449, 1.8499076355210342},
			{4.966331568400225e-07, 30.514679531497205, 5.514409696802677},
			{4.896181900495673e-07, 30.30461697465992, 4.725935549253707},
			{4.2623259491725284e-07, 30.829773366753134, 1.7775287511966122},
			{4.073638051879655e-07, 30.199585696241275, 2.3089021103541345},
			{3.9871833231857396e-07, 33.37266332771124, 1.1261661181883016},
			{3.9723885563106247e-07, 25.849024723255575, 0.8465299945743753},
			{3.8507514880166436e-07, 25.00877449590643, 3.349619033875975},
			{3.6065661945472886e-07, 33.05756949245531, 1.6495813870020877},
			{3.3942512191622675e-07, 27.551664456864533, 0.6319155826320999},
			{2.435013941571675e-07, 32.84750693561802, 3.535387435216177},
			{2.0256532254671762e-07, 28.391914684213678, 1.6702688321553967},
			{1.905952156418862e-07, 35.495428174994764, 4.752537767388987},
			{1.8097543157149548e-07, 32.74247565719938, 2.9614311569377816},
			{1.6037450080150566e-07, 35.70549073183205, 2.5291674411171625},
			{1.1401319727146538e-07, 35.39039689657612, 5.198558542038892},
			{1.1334129553602084e-07, 35.81052201025069, 1.6441956078032784},
			{7.786143008444964e-08, 38.14334941437151, 0.41194031983820845},
			{5.313301403166777e-08, 35.28536561815748, 4.978258520736592},
		},
		{
			{4.7327979061183045, 2.5428899609581004, 3.6323334256654403},
			{4.2196665753028775, 2.332827404120815, 2.6968504064000673},
			{2.802803618064484, 2.647921239376743, 0.30304572041703204},
			{2.7026414070018983, 2.7529525177953857, 3.3093031156270647},
			{2.0525596458549664, 2.2277961257021723, 0.2852898136471817},
			{1.9578856693606834, 2.4378586825394577, 0.9972216068274137},
			{1.3870482830645443, 2.8579837962140284, 0.08583903139239304},
			{1.0413007442898627, 4.875717365078915, 2.1199947232222893},
			{0.7199302336849474, 5.400873757172129, 0.7117223094420728},
			{0.5035768136638122, 4.770686086660272, 0.5634451327418597},
			{0.46072740928200784, 5.295842478753486, 5.879547972604063},
			{0.4495915984621174, 5.085779921916201, 1.507187825914766},
			{0.37257118222305724, 7.418607326037016, 3.11397486266185},
			{0.3701731419897876, 5.190811200334844, 4.119898795098946},
			{0.2245109526757622, 4.980748643497558, 3.3762633594294886},
			{0.1909474483196251, 7.313576047618373, 0.9939236210276129},
			{0.13752572043918915, 7.628669882874301, 2.9336626560488814},
			{0.1178638457537614, 2.1227648472835297, 1.3713996520096523},
			{0.10754932255116803, 7.94376371813023, 1.399183426877059},
			{0.0832244617308496, 2.963015074632671, 5.066068064331186},
			{0.06472828711403746, 7.523638604455658, 0.6678059702454676},
			{0.05803405625717851, 7.8387324397115865, 2.9027390917757088},
			{0.05623087483167609, 10.381622400669688, 2.5135552151633687},
			{0.05093867891159019, 9.961497286995115, 4.013371574720143},
			{0.037543140509677775, 5.5059050355907715, 6.031704196627666},
			{0.03485539636825323, 10.48665367908833, 3.540495313840974},
			{0.034078762297849785, 4.66565480824163, 1.518725253514129},
			{0.018938561798859863, 9.856466008576474, 3.179354198277243},
			{0.01667448721882359, 7.733701161292944, 0.7245904348841157},
			{0.016456456486000255, 10.066528565413758, 4.713238768040352},
			{0.01504846233389419, 12.819481083209144, 0.5817917000582535},
			{0.011816377484049083, 13.029543640046429, 1.1966019822683442},
			{0.011659458152435959, 7.20854476919973, 2.0765960428522154},
			{0.011539091572283413, 10.171559843832402, 2.5590767864507327},
			{0.010991296679983449, 12.504387247953215, 2.090073915111001},
			{0.008041133864016193, 12.399355969534573, 0.4778585923740163},
			{0.0065081378282920615, 10.276591122251045, 2.6346663844598956},
			{0.006501157192880895, 12.714449804790501, 1.5625523768974832},
			{0.005707639584303485, 8.048794996548873, 0.2746168434995199},
			{0.005702753818045632, 12.609418526371858, 6.2643215266812735},
			{0.00438544127477128, 15.467402322585889, 5.25336513839541},
			{0.0027336511051353047, 15.57243360100453, 0.7845923398613067},
			{0.002536692074599378, 15.257339765748602, 4.350994188565535},
			{0.002304573527136975, 14.942245930492675, 0.39977915778860507},
			{0.0018436452649904732, 10.591684957506972, 2.693225781341302},
			{0.0016539722476859955, 15.362371044167245, 5.144880979643167},
			{0.001626356992181332, 12.924512361627787, 1.8523283359429845},
			{0.0015820540729306145, 15.15230848732996, 2.7723393964899388},
			{0.001511098282214778, 15.047277208911316, 2.227300682634742},
			{0.0012019731393792326, 9.75143473015783, 3.9218120694399805},
			{0.0008740827798478859, 0.0, 4.71238898038469},
			{0.0005271637499251205, 13.134574918465072, 0.03519581008767864},
			{0.0004894678019546184, 17.485135891450774, 6.269921552349286},
			{0.00046762853581229876, 12.29432469111593, 1.5865923247205653},
			{0.0004039985905221596, 17.905261005125347, 6.09980007117037},
			{0.00030327856682838016, 0.31509383525592816, 0.3617504984831555},
			{0.00027705096759279743, 17.590167169869417, 2.601365721135335},
			{0.0002694535963995938, 17.69519844828806, 5.948777642429834},
			{0.00022003183446719872, 18.01029228354399, 2.554795220990113},
			{0.00017659752963731923, 0.21006255683728545, 4.699247614650642},
			{0.00016541060204442641, 0.10503127841864272, 5.4296473896610715},
			{0.00015824529215412807, 15.677464879423173, 6.0452000288238565},
			{0.00012675801286585588, 14.837214652074032, 1.459456731500739},
			{0.00010993542602033451, 20.028025852408874, 5.708997996370278},
			{0.00010580165619493189, 20.133057130827517, 0.23850385995348647},
			{9.541359749344907e-05, 22.675947091785616, 5.3743511092675735},
			{9.355967673540337e-05, 20.448150966083446, 5.455773134755424},
			{7.098456176880946e-05, 20.55318224450209, 3.7865138995741163},
			{6.748074288268313e-05, 20.658213522920732, 5.305892844381838},
			{5.025324194253786e-05, 18.115323561962633, 5.138883158683088},
			{4.4809444893531314e-05, 17.800229726706704, 2.979667217247707},
			{3.543043083093734e-05, 22.570915813366973, 3.766465954420575},
			{3.5203448078844267e-05, 23.201103483878832, 3.7425190158728037},
			{3.511787318488561e-05, 0.4201251136745709, 5.755130638708216},
			{2.4100655468067088e-05, 20.23808840924616, 5.373302293943064},
			{2.3855906988515655e-05, 25.218837052743716, 5.714162791530403},
			{2.3151866286464745e-05, 23.09607220546019, 2.846217396879952},
			{2.2962745108515775e-05, 22.78097837020426, 0.07264448975075408},
			{2.158475265395392e-05, 17.38010461303213, 1.110677137976211},
			{2.103875536145298e-05, 22.886009648622903, 0.5746131808077873},
			{1.7574451352139625e-05, 25.63896216641829, 4.519493617791553},
			{1.511128736713285e-05, 20.343119687664803, 1.2980834096280567},
			{1.0712550351922194e-05, 25.428899609581002, 5.348965504180523},
			{7.5164137332099535e-06, 27.76172701370182, 2.8074906049227972},
			{7.503816328330329e-06, 25.74399344483693, 0.5551384380833896},
			{7.1252369366112445e-06, 25.533930887999645, 0.7480504143959328},
			{6.840381077503432e-06, 27.866758292120462, 3.606088442709759},
			{6.786766143910508e-06, 22.991040927041546, 1.7811881929152813},
			{6.602530587908032e-06, 25.113805774325073, 3.978901055881712},
			{6.421820676184855e-06, 18.220354840381276, 4.47015931723748},
			{5.9809323164598835e-06, 25.32386833116236, 2.5215765205348277},
			{5.638233526774148e-06, 27.656695735283176, 1.3939686399446478},
			{5.061337223838721e-06, 19.92299457399023, 0.29805106778258444},
			{4.261765292830255e-06, 20.763244801339376, 4.3813077724354015},
			{3.4707866466040797e-06, 28.286883405795034, 1.0655039364506982},
			{2.7476964157743272e-06, 27.971789570539105, 4.725119542445778},
			{2.357219365671671e-06, 22.46588453494833, 4.5791976810124275},
			{2.3514039934875564e-06, 28.18185212737639, 5.125490339731594},
			{1.90948903713553e-06, 23.306134762297475, 2.8323979570331037},
			{1.8069080037149887e-06, 30.30461697465992, 5.977871563952208},
			{1.519350532419404e-06, 28.076820848957748, 5.948028699322532},
			{9.955841177612776e-07, 30.72474208833449, 4.904860674364961},
			{7.711256995062619e-07, 33.267632049292594, 4.655313520125453},
			{6.28875942517093e-07, 32.84750693561802, 5.920601620024493},
			{5.321568960800309e-07, 30.619710809915848, 4.747245882097096},
			{5.134290487223498e-07, 30.829773366753134, 0.17435164248745535},
			{4.889379267719557e-07, 30.199585696241275, 3.815568139846703},
			{4.759935942905034e-07, 33.37266332771124, 5.840128671179588},
			{4.5301719971991185e-07, 30.514679531497205, 1.201892597529021},
			{3.7392269034832967e-07, 25.849024723255575, 5.545582559200805},
			{3.645849609664348e-07, 25.00877449590643, 4.923621814868332},
			{3.214976467621242e-07, 27.551664456864533, 2.1852758908493097},
			{2.610731211836823e-07, 33.16260077087395, 4.32522973730011},
			{2.0543429174335504e-07, 32.74247565719938, 4.451354372205338},
			{1.9412180821979178e-07, 28.391914684213678, 0.11043476852621699},
			{1.516257548744127e-07, 33.05756949245531, 5.410518766019927},
			{1.406228515989538e-07, 35.39039689657612, 1.1482195407775202},
			{1.286126548200736e-07, 30.40964825307856, 3.0379483553918414},
			{1.223416445543016e-07, 32.952538214036664, 4.718640687091828},
			{1.1477896597412224e-07, 35.81052201025069, 5.53294751484908},
			{6.89420707645546e-08, 37.93328685753422, 4.806450600306525},
			{6.065078904341999e-08, 35.495428174994764, 3.686546201136156},
			{6.031010179183452e-08, 35.70549073183205, 4.749238493311031},
			{5.9042404651407184e-08, 35.28536561815748, 0.34548856895580243},
		},
		{
			{7.225962311493648, 2.4378586825394577, 3.2595895009948714},
			{3.655765473611555, 2.5428899609581004, 0.7969895093204904},
			{2.796992340138807, 2.647921239376743, 2.785367262479585},
			{2.4526529733177416, 2.7529525177953857, 0.20196979354437405},
			{2.1687605134243535, 2.332827404120815, 0.48909703714070885},
			{1.4686491198595852, 2.2277961257021723, 1.8806565762263459},
			{1.3570226557926635, 5.295842478753486, 6.278473660053456},
			{1.3038827446991395, 4.980748643497558, 2.3554494277236198},
			{0.9962904497796791, 2.8579837962140284, 4.672642904243042},
			{0.8462884519820497, 5.085779921916201, 1.6104205719396607},
			{0.8031011536650248, 5.190811200334844, 0.5052605019983115},
			{0.5643504018000094, 4.875717365078915, 1.7027000410785644},
			{0.49410901845663824, 7.523638604455658, 3.503498440092372},
			{0.49006856114797415, 5.400873757172129, 5.456794392846284},
			{0.3855535341850549, 4.770686086660272, 2.08991067308341},
			{0.2858560281104546, 7.733701161292944, 1.980578568093843},
			{0.24475212738233357, 7.8387324397115865, 0.9509607001417817},
			{0.1773175069830293, 7.418607326037016, 1.4587917043776133},
			{0.15512514581027836, 7.628669882874301, 1.6188841155476623},
			{0.14022506839946786, 7.313576047618373, 2.5853111985269988},
			{0.09935303883942365, 10.276591122251045, 2.29235644328732},
			{0.09149636109909341, 10.066528565413758, 4.267994107433717},
			{0.07307470422347062, 7.94376371813023, 6.073723845330511},
			{0.06565396499230373, 10.381622400669688, 2.530671716097508},
			{0.041286969913278466, 9.961497286995115, 4.517331513721249},
			{0.03169573753085626, 2.1227648472835297, 2.9464495078088464},
			{0.026538299085074372, 12.924512361627787, 0.6919250892283778},
			{0.02382075013182627, 10.48665367908833, 2.053121845799592},
			{0.022570609684572147, 2.963015074632671, 3.477920077882117},
			{0.02184891791386239, 12.714449804790501, 0.7870402920977704},
			{0.019395916481266956, 10.171559843832402, 3.46833518592971},
			{0.01887274891627819, 12.609418526371858, 2.073471456511336},
			{0.013880684047172628, 9.856466008576474, 4.605453001633618},
			{0.013619684913296811, 12.819481083209144, 0.9238163296685535},
			{0.011133548826320148, 12.504387247953215, 1.2050564225097258},
			{0.010051123402594548, 5.5059050355907715, 4.465149540783788},
			{0.009295676537668374, 4.66565480824163, 3.0874239269358927},
			{0.00753482111211541, 13.029543640046429, 5.865359627933947},
			{0.0057437069032242995, 12.399355969534573, 2.0712144435749043},
			{0.005197294923017143, 15.362371044167245, 4.878835187110525},
			{0.003937046820928398, 15.047277208911316, 0.9763808049809907},
			{0.0032840515314420246, 15.467402322585889, 0.04892444283780409},
			{0.0031512556440920986, 7.20854476919973, 3.6515253341122675},
			{0.001958452701910369, 15.57243360100453, 5.505539126345353},
			{0.001601753673097961, 14.942245930492675, 1.9792104741720236},
			{0.001536070155904588, 8.048794996548873, 4.980261274787406},
			{0.0009628609524984213, 17.590167169869417, 0.40787818062891584},
			{0.0007581079881175956, 15.257339765748602, 0.11246189561904124},
			{0.000728502777841911, 17.800229726706704, 0.02420735187380727},
			{0.0006192006136786492, 15.15230848732996, 2.8221283844286247},
			{0.0004949214450011312, 10.591684957506972, 1.135869347842738},
			{0.00048407617479670544, 0.21006255683728545, 6.055818206289136},
			{0.0003782957130514503, 17.905261005125347, 1.2394867950907849},
			{0.0003517054746780488, 17.69519844828806, 3.1981372294345576},
			{0.00032790243519991927, 9.75143473015783, 5.476374968589943},
			{0.0003132945364443449, 17.485135891450774, 1.593133774858627},
			{0.00027322143329970404, 0.31509383525592816, 5.135344503928309},
			{0.0002396660857727189, 20.133057130827517, 0.22603661815697415},
			{0.0001512327555447443, 20.343119687664803, 6.066848709433595},
			{0.0001395987482074105, 13.134574918465072, 4.732750696257148},
			{0.00012630094333687891, 12.29432469111593, 3.168643356218782},
			{0.0001128513393848428, 0.0, 4.71238898038469},
			{0.000112508051365712, 20.23808840924616, 0.4541875744837387},
			{9.499045275534515e-05, 22.78097837020426, 5.764686733592822},
			{9.360502419892468e-05, 20.55318224450209, 4.477725150515324},
			{7.787712722194085e-05, 0.10503127841864272, 0.6751985233718473},
			{7.082910328850616e-05, 20.028025852408874, 0.933956935724816},
			{6.999333643758579e-05, 23.09607220546019, 2.944842210826189},
			{6.520680904762689e-05, 18.01029228354399, 1.208589125620652},
			{5.362355262036016e-05, 18.115323561962633, 3.759039299698682},
			{5.005964535424511e-05, 20.658213522920732, 3.78150521562474},
			{4.260780461913767e-05, 15.677464879423173, 4.473676525192804},
			{4.219228597687464e-05, 22.675947091785616, 5.321201791823005},
			{3.413213569294427e-05, 14.837214652074032, 3.0330822588668696},
			{3.2682888662087476e-05, 20.448150966083446, 4.055548390651932},
			{3.1705461049974344e-05, 22.991040927041546, 2.7519885157292228},
			{2.741299995587691e-05, 25.32386833116236, 6.034664981984334},
			{2.6915377613802425e-05, 22.570915813366973, 5.222459758284687},
			{2.4328440394863882e-05, 23.201103483878832, 2.231582454208172},
			{2.185615754881196e-05, 22.886009648622903, 0.5481798750185799},
			{1.894234097381354e-05, 25.533930887999645, 4.31068518720614},
			{1.1284276479629136e-05, 27.866758292120462, 3.3026728415835866},
			{1.0711240841380398e-05, 0.4201251136745709, 4.203721975929371},
			{8.528933510321095e-06, 25.63896216641829, 0.6702594369795386},
			{8.325800779781063e-06, 27.76172701370182, 2.292500967761184},
			{8.092704147817533e-06, 25.428899609581002, 1.794591034562823},
			{7.110218437293171e-06, 25.218837052743716, 5.8195883815278915},
			{6.0554404547998575e-06, 28.18185212737639, 0.6483015301383188},
			{5.679056616418576e-06, 17.38010461303213, 2.6895365709540022},
			{5.049442083784173e-06, 25.74399344483693, 5.151072200217459},
			{4.671247916958947e-06, 25.113805774325073, 5.485896111859599},
			{4.019783424792931e-06, 27.656695735283176, 2.8646484027239167},
			{3.344264470829599e-06, 28.076820848957748, 1.140940164378803},
			{2.3935839396692273e-06, 28.286883405795034, 5.795039845017122},
			{2.2832523800935517e-06, 27.971789570539105, 2.7947115922070975},
			{1.8991449168891784e-06, 30.40964825307856, 0.4758197515955348},
			{1.8173508874754095e-06, 18.220354840381276, 2.924560549892029},
			{1.3447212587268744e-06, 19.92299457399023, 1.8528567720387863},
			{1.1566883702984072e-06, 20.763244801339376, 2.82185457093488},
			{9.641525044797934e-07, 33.16260077087395, 4.493093435789492},
			{8.268749657169785e-07, 32.952538214036664, 0.029072116167283984},
			{8.051229892428233e-07, 30.619710809915848, 4.823942612715404},
			{7.092013699490953e-07, 33.267632049292594, 4.932423448637115},
			{6.420942322748219e-07, 22.46588453494833, 6.140434248464634},
			{6.116617262674992e-07, 30.72474208833449, 5.958182604023733},
			{5.442893868002637e-07, 30.514679531497205, 2.758487385302352},
			{5.122592750979486e-07, 23.306134762297475, 1.2683879043706014},
			{3.927709735681473e-07, 32.84750693561802, 5.721145418532769},
			{3.5617835674399575e-07, 30.30461697465992, 5.479442990417589},
			{3.134324197324578e-07, 33.37266332771124, 4.250339458254845},
			{3.002408911777209e-07, 30.829773366753134, 4.811940832860809},
			{2.925955218331985e-07, 30.199585696241275, 5.36061258218899},
			{2.683868699293657e-07, 35.495428174994764, 1.8001518664851335},
			{2.0187511211236846e-07, 35.70549073183205, 5.698204320992877},
			{1.9786757049606449e-07, 33.05756949245531, 4.6390995249878575},
			{1.2109343601232709e-07, 32.74247565719938, 6.191994873023935},
			{9.966723550397021e-08, 25.849024723255575, 3.960284912077909},
			{9.785461487002226e-08, 25.00877449590643, 0.21603381458764548},
			{9.391772206175939e-08, 35.60045945341341, 4.466165410133875},
			{9.34976921600477e-08, 35.39039689657612, 1.0178651494577806},
			{8.61066771231279e-08, 27.551664456864533, 3.735393422005753},
			{6.488935914729269e-08, 38.14334941437151, 3.606539678707271},
			{5.979353179480446e-08, 38.35341197120879, 3.0946927843642964},
			{5.76306622247717e-08, 37.93328685753422, 3.9798729973742795},
			{5.7593182196658746e-08, 35.81052201025069, 5.142302306942032},
			{5.5569589654637757e-08, 35.28536561815748, 1.9260174834127817},
			{5.290340941210927e-08, 28.391914684213678, 4.836513042586773},
			{5.113334622598558e-08, 38.03831813595286, 4.7490808446594155},
		},
	},
}
